package cli

import (
	"github.com/spf13/cobra"
)

func newProjectCmd(a *app) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "project",
		Short: "Project recruitment cash flow",
		Long: `Project inflow from join fees against one-time bonus outflow when every
tier recruits at the baseline rate for the given number of days.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cf, err := a.svc.ProjectCashFlow(cmd.Context(), days)
			if err != nil {
				return err
			}
			return a.printer.WriteCashFlow(cmd.OutOrStdout(), *cf)
		},
	}

	cmd.Flags().IntVar(&days, FlagDays, DefaultDays, "Projection horizon in days (0-3650)")
	return cmd
}
