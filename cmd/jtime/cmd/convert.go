package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/jtime/internal/convert"
)

func newConvertCmd(a *app) *cobra.Command {
	var from string

	cmd := &cobra.Command{
		Use:   "convert <value>",
		Short: "Convert a value into every representation",
		Long: `Parses a value in one representation and shows it as a moment,
Unix seconds, a unit count, UTC time and Julian date.

Examples:
  jtime convert 210866803200
  jtime convert --from unix 1700000000.5
  jtime convert --from rfc3339 2024-02-29T12:00:00Z -o json
  jtime convert --from julian-day 2451545.0 --unit d
  jtime convert --from unix -- -1.25`,
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repr, err := convert.ParseRepresentation(a.setting(cmd, "from", from, keyInputFrom))
			if err != nil {
				return err
			}

			r, err := a.service.Convert(args[0], repr)
			if err != nil {
				return err
			}
			return a.write(cmd, r)
		},
	}

	cmd.Flags().StringVarP(&from, "from", "f", "", "input representation (default from config, moment)")
	return cmd
}
