package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yourname/healthtracker/internal"
	"github.com/yourname/healthtracker/internal/metrics"
)

func newSleepCmd(opts *options) *cobra.Command {
	var sleepAt, wakeAt string
	cmd := &cobra.Command{
		Use:   "sleep",
		Short: "Compute the length of one night from bed and wake times",
		RunE: func(cmd *cobra.Command, _ []string) error {
			hours, err := metrics.SleepDuration(sleepAt, wakeAt)
			if err != nil {
				return err
			}
			score := metrics.SleepScore([]internal.SleepEntry{{Duration: hours}}, 1)
			quality := metrics.QualityLabel(score)
			out := map[string]any{
				"sleep_time": sleepAt,
				"wake_time":  wakeAt,
				"hours":      hours,
				"score":      score,
				"quality":    quality,
			}
			return opts.write(cmd.OutOrStdout(), out, func() string {
				return section("Sleep", [][2]string{
					{"Bedtime", sleepAt},
					{"Wake", wakeAt},
					{"Hours", num(hours)},
					{"Score", fmt.Sprintf("%d (%s)", score, quality)},
				})
			})
		},
	}
	cmd.Flags().StringVar(&sleepAt, "sleep", "", "Bedtime as HH:MM")
	cmd.Flags().StringVar(&wakeAt, "wake", "", "Wake time as HH:MM")
	_ = cmd.MarkFlagRequired("sleep")
	_ = cmd.MarkFlagRequired("wake")
	return cmd
}
