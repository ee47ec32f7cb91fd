package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/osse101/TierPlan_Go/internal/domain"
	"github.com/osse101/TierPlan_Go/internal/report"
)

func newMonitorCmd(a *app) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "monitor [N1 ... N8]",
		Short: "Run one requalification check",
		Long: `Evaluate the member table over the fixed requalification window and print
a notice for every tier whose members must requalify.`,
		Args: cobra.MaximumNArgs(domain.TierCount),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			counts, err := resolveCounts(args, file)
			if err != nil {
				return err
			}
			if counts != nil {
				if _, err := a.svc.SetTable(ctx, counts); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			eval := a.svc.Evaluate(ctx)
			if err := a.printer.WriteRequalification(out, eval.Requalification[:]); err != nil {
				return err
			}
			fmt.Fprintln(out)

			notices := a.svc.CheckRequalification(ctx)
			if len(notices) == 0 {
				_, err := fmt.Fprintln(out, MsgNoRequalification)
				return err
			}
			return report.WriteNotices(out, notices)
		},
	}

	cmd.Flags().StringVarP(&file, FlagFile, "f", "", "TOML plan file with the member counts")
	return cmd
}
