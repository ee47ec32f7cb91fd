package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/osse101/TierPlan_Go/internal/domain"
)

// evaluationOutput is the --json shape of evaluate
type evaluationOutput struct {
	Members    []int             `json:"members"`
	Evaluation domain.Evaluation `json:"evaluation"`
	Warning    string            `json:"warning,omitempty"`
}

func newEvaluateCmd(a *app) *cobra.Command {
	var (
		file    string
		jsonOut bool
	)

	cmd := &cobra.Command{
		Use:   "evaluate [N1 ... N8]",
		Short: "Evaluate a member table",
		Long: `Evaluate eight member counts, one per tier, and print the full report.
Counts come from the arguments or from a TOML plan file (members = [...]).
Negative counts are clamped to zero and reported as a warning.`,
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

			table, eval := a.svc.Snapshot(ctx)
			warning := ""
			if n, ok := a.svc.Warning(ctx); ok {
				warning = n.Message
			}

			if jsonOut {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", JSONIndent)
				if err := enc.Encode(evaluationOutput{
					Members:    table.Counts(),
					Evaluation: eval,
					Warning:    warning,
				}); err != nil {
					return fmt.Errorf(ErrMsgEncodeJSONFailed, err)
				}
				return nil
			}
			return a.printer.WriteEvaluation(cmd.OutOrStdout(), eval, warning)
		},
	}

	cmd.Flags().StringVarP(&file, FlagFile, "f", "", "TOML plan file with the member counts")
	cmd.Flags().BoolVar(&jsonOut, FlagJSON, false, "Print the evaluation as JSON")
	return cmd
}
