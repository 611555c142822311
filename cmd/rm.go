package cmd

import (
	"github.com/frostyard/shellkit/internal/fsutil"
	"github.com/spf13/cobra"
)

var dryRun bool

var rmCmd = &cobra.Command{
	Use:   "rm PATH...",
	Short: "Remove files or directory trees, skipping paths that don't exist",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := loadConfig()
		if err != nil {
			return err
		}
		log := newLogger(cfg)

		for _, path := range args {
			if dryRun {
				if fsutil.Exists(path) {
					log.Infof("would remove %s", path)
				} else {
					log.Debugf("%s does not exist, nothing to remove", path)
				}
				continue
			}
			if err := fsutil.SafeRemove(fsutil.OSRemover{}, path); err != nil {
				return err
			}
			log.Debugf("removed %s", path)
		}
		return nil
	},
}

func init() {
	rmCmd.Flags().BoolVar(&dryRun, "dry-run", false, "log what would be removed without deleting anything")
	rootCmd.AddCommand(rmCmd)
}
