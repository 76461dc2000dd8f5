package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/jtime/internal/convert"
	"github.com/msto63/jtime/internal/report"
)

type arithFunc func(s *convert.Service, a string, aRepr convert.Representation, b string, bRepr convert.Representation) (report.Report, error)

func newAddCmd(a *app) *cobra.Command {
	return newArithCmd(a, "add", "Add a span or moment to a moment", `Examples:
  jtime add 210866803200 90m
  jtime add --from unix 1700000000 "2 days"
  jtime add 10.5 --by moment 4.25
  jtime add -- 10.5 -2s`, (*convert.Service).Add)
}

func newSubCmd(a *app) *cobra.Command {
	return newArithCmd(a, "sub", "Subtract a span or moment from a moment", `Examples:
  jtime sub --from rfc3339 2024-03-01T00:00:00Z 1h
  jtime sub --from unix --by unix 1700000000 1600000000`, (*convert.Service).Sub)
}

func newArithCmd(a *app, name, short, examples string, fn arithFunc) *cobra.Command {
	var from, by string

	cmd := &cobra.Command{
		Use:   name + " <a> <b>",
		Short: short,
		Long: short + `.

<a> is read with --from. <b> is read with --by, which defaults to
"offset": a span such as 90m, 1.5h or "3 weeks". Negative values
go after "--".

` + examples,
		Args: exactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			aRepr, err := convert.ParseRepresentation(a.setting(cmd, "from", from, keyInputFrom))
			if err != nil {
				return err
			}
			bRepr, err := convert.ParseRepresentation(by)
			if err != nil {
				return err
			}

			r, err := fn(a.service, args[0], aRepr, args[1], bRepr)
			if err != nil {
				return err
			}
			return a.write(cmd, r)
		},
	}

	cmd.Flags().StringVarP(&from, "from", "f", "", "representation of <a> (default from config, moment)")
	cmd.Flags().StringVarP(&by, "by", "b", string(convert.ReprOffset), "representation of <b>")
	return cmd
}
