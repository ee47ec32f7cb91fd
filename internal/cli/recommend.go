package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRecommendCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "recommend",
		Short: "Suggest a recruitment pace",
		Long:  `Print the recruitment pace suggested by the margin of the standard projection.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rec := a.svc.OptimalRate(cmd.Context())
			_, err := fmt.Fprintf(cmd.OutOrStdout(), MsgRecommendation, a.printer.Rate(rec))
			return err
		},
	}
}
