package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/jtime/internal/report"
	"github.com/msto63/jtime/pkg/core/version"
)

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			info := version.Get()
			if a.format == report.FormatText {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), info.String())
				return err
			}
			return report.Encode(cmd.OutOrStdout(), info, a.format)
		},
	}
}
