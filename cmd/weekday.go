package cmd

import (
	"fmt"
	"time"

	"github.com/frostyard/shellkit/internal/weekday"
	"github.com/spf13/cobra"
)

var weekdayIndex int

var weekdayCmd = &cobra.Command{
	Use:   "weekday [YYYY-MM-DD]",
	Short: "Print the weekday name for today or a given date",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("index") {
			name, err := weekday.OfIndex(weekdayIndex)
			if err != nil {
				return err
			}
			fmt.Println(name)
			return nil
		}

		t := time.Now()
		if len(args) == 1 {
			var err error
			t, err = parseDate(args[0])
			if err != nil {
				return err
			}
		}
		fmt.Println(weekday.Name(t))
		return nil
	},
}

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return t, nil
}

func init() {
	weekdayCmd.Flags().IntVar(&weekdayIndex, "index", 0, "print the name for a 0=Sunday..6=Saturday day number instead of a date")
	rootCmd.AddCommand(weekdayCmd)
}
