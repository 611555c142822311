package cmd

import (
	"fmt"

	"github.com/frostyard/shellkit/internal/depcheck"
	"github.com/frostyard/shellkit/internal/pathsearch"
	"github.com/frostyard/shellkit/internal/runner"
	"github.com/spf13/cobra"
)

var checkPath string

var checkCmd = &cobra.Command{
	Use:   "check [command...]",
	Short: "Report required external commands missing from PATH",
	Long: `Check resolves each command name against the invoking environment's
PATH. Missing names are printed to stdout as a single whitespace-joined
line and the exit status is non-zero, so scripts can branch on the
result. With no arguments the 'require' list from the config file is
checked.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := loadConfig()
		if err != nil {
			return err
		}
		log := newLogger(cfg)

		names := args
		if len(names) == 0 {
			names = cfg.Require
		}

		var r runner.Runner = &runner.SystemRunner{}
		if cmd.Flags().Changed("path") {
			r = pathsearch.FromEnv(checkPath)
		}

		res := depcheck.Check(r, names)
		if res.OK() {
			log.Debugf("all %d required commands resolved", len(names))
			return nil
		}

		fmt.Println(res.Line())
		return res.Err()
	},
}

func init() {
	checkCmd.Flags().StringVar(&checkPath, "path", "", "resolve against this PATH-style directory list instead of the process PATH")
	rootCmd.AddCommand(checkCmd)
}
