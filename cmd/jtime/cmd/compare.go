package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/jtime/internal/convert"
)

func newCompareCmd(a *app) *cobra.Command {
	var from string

	cmd := &cobra.Command{
		Use:   "compare <a> <b>",
		Short: "Order two moments and show the span between them",
		Long: `Order two moments and show the span between them.

Examples:
  jtime compare 210866803200 210866803200.000000001
  jtime compare --from rfc3339 2024-01-01 2024-12-31T23:59:59Z
  jtime compare --from unix -- -1 1`,
		Args: exactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			repr, err := convert.ParseRepresentation(a.setting(cmd, "from", from, keyInputFrom))
			if err != nil {
				return err
			}

			r, err := a.service.Compare(args[0], args[1], repr)
			if err != nil {
				return err
			}
			return a.write(cmd, r)
		},
	}

	cmd.Flags().StringVarP(&from, "from", "f", "", "representation of both values (default from config, moment)")
	return cmd
}
