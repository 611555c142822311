package cmd

import (
	"fmt"

	"github.com/frostyard/shellkit/internal/fsutil"
	"github.com/spf13/cobra"
)

var trimslashCmd = &cobra.Command{
	Use:   "trimslash PATH",
	Short: "Print a path with trailing slashes removed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(fsutil.TrimTrailingSlash(args[0]))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(trimslashCmd)
}
