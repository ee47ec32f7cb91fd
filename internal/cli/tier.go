package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/osse101/TierPlan_Go/internal/domain"
)

func newTierCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tier LEVEL MEMBERS",
		Short: "Evaluate one tier",
		Long:  `Set the member count of a single tier (1-8) and print its sales, bonuses and requalification period.`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			level, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf(ErrMsgParseLevelFailed, domain.ErrInvalidLevel, args[0])
			}
			members, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf(ErrMsgParseCountFailed, domain.ErrInvalidInput, args[1])
			}

			res, err := a.svc.SetMembers(ctx, level, members)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if err := a.printer.WriteTier(out, res.Evaluation.Tiers[level-1]); err != nil {
				return err
			}
			if res.Warning != nil {
				fmt.Fprintf(out, MsgWarningLine, res.Warning.Message)
			}
			return nil
		},
	}
}
