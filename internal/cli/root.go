// Package cli is the tiercalc command line: one-shot evaluations of a member
// table against the plan rates, printed as a text report or JSON.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/osse101/TierPlan_Go/internal/compensation"
	"github.com/osse101/TierPlan_Go/internal/event"
	"github.com/osse101/TierPlan_Go/internal/handler"
	"github.com/osse101/TierPlan_Go/internal/logger"
	"github.com/osse101/TierPlan_Go/internal/notice"
	"github.com/osse101/TierPlan_Go/internal/plan"
	"github.com/osse101/TierPlan_Go/internal/report"
)

// app is the state shared by every subcommand of one invocation
type app struct {
	ratesFile string
	logLevel  string

	svc     plan.Service
	printer *report.Printer
}

// NewRootCommand builds a fresh command tree. Each call gets its own flags.
func NewRootCommand() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   AppName,
		Short: "Evaluate an eight-tier compensation plan",
		Long: `tiercalc evaluates member counts against the plan rates: per-tier sales and
bonuses, totals, risk, recommended recruitment, cash-flow projections and
requalification checks. Rates default to the standard plan and can be
overridden with a TOML file.`,
		Version:           handler.Version,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	rootCmd.PersistentFlags().StringVar(&a.ratesFile, FlagRates, "", "TOML file overriding the plan rates")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, FlagLogLevel, DefaultLevel, "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(
		newEvaluateCmd(a),
		newTierCmd(a),
		newProjectCmd(a),
		newRecommendCmd(a),
		newMonitorCmd(a),
	)
	return rootCmd
}

// Execute runs the command line and exits non-zero on failure
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

// setup installs the logger and builds the plan service once flags are parsed
func (a *app) setup(cmd *cobra.Command, args []string) error {
	logger.InitLoggerWithWriter(logger.CLIConfig(a.logLevel, handler.Version), cmd.ErrOrStderr())

	cfg := compensation.DefaultConfig()
	if a.ratesFile != "" {
		loaded, err := compensation.LoadConfigFile(a.ratesFile)
		if err != nil {
			return fmt.Errorf(ErrMsgLoadRatesFailed, err)
		}
		cfg = loaded
	}

	a.svc = plan.NewService(cfg, notice.NewBoard(), event.NewMemoryBus(), plan.Options{
		Source: plan.SourceCLI,
	})
	a.printer = report.NewPrinter()
	return nil
}
