package cmd

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/frostyard/shellkit/internal/version"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, path, err := loadConfig()
		if err != nil {
			return err
		}

		fmt.Printf("# shellkit %s\n", version.String())
		fmt.Printf("# %s\n", path)
		return toml.NewEncoder(os.Stdout).Encode(cfg)
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
