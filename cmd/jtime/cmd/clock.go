package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/msto63/jtime/internal/tui/clock"
)

func newClockCmd(a *app) *cobra.Command {
	var interval time.Duration

	cmd := &cobra.Command{
		Use:   "clock",
		Short: "Run a live Julian clock",
		Long: `Shows the current moment, refreshed on an interval.

Keys:
  u / →   next unit
  U / ←   previous unit
  q       quit`,
		Args: exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("interval") {
				interval = a.cfg.GetDuration(keyClockInterval, clock.DefaultInterval)
			}
			a.logger.Debug("starting clock", "interval", interval.String(), "unit", a.service.Unit().String())

			return clock.Run(cmd.Context(), clock.Config{
				Interval: interval,
				Unit:     a.service.Unit(),
			})
		},
	}

	cmd.Flags().DurationVar(&interval, "interval", clock.DefaultInterval, "refresh interval")
	return cmd
}
