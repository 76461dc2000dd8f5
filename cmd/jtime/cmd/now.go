package cmd

import (
	"github.com/spf13/cobra"
)

func newNowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "now",
		Short: "Show the current moment",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.write(cmd, a.service.Now())
		},
	}
}
