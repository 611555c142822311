package cmd

import (
	"fmt"

	"github.com/frostyard/shellkit/internal/fsutil"
	"github.com/spf13/cobra"
)

var abspathCmd = &cobra.Command{
	Use:   "abspath PATH",
	Short: "Print the absolute form of a path",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		abs, err := fsutil.Abs(args[0])
		if err != nil {
			return err
		}
		fmt.Println(abs)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(abspathCmd)
}
