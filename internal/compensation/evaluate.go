package compensation

import "github.com/osse101/TierPlan_Go/internal/domain"

// Evaluate runs one full pass over the table: every tier, then totals, then
// the risk rating and recruitment recommendation, then the windowed
// requalification status of each tier. Nothing is carried over from earlier
// passes.
func Evaluate(cfg Config, table domain.Table) domain.Evaluation {
	var eval domain.Evaluation
	for i, tier := range table {
		eval.Tiers[i] = ComputeTier(cfg, tier.Level, tier.CurrentMembers)
		eval.Requalification[i] = RequalificationStatusFor(cfg, tier)
	}

	eval.Totals = ComputeTotals(cfg, table)
	eval.Risk = ClassifyRisk(eval.Totals.Sales, eval.Totals.Bonuses)
	eval.Recommendation = RecommendRate(cfg, eval.Risk.Ratio)
	return eval
}

// RequiringRequalification returns the levels whose window earnings have
// reached the requalification threshold, in ascending order.
func RequiringRequalification(cfg Config, table domain.Table) []int {
	var levels []int
	for _, tier := range table {
		if WindowedRequalificationCheck(cfg, tier) {
			levels = append(levels, tier.Level)
		}
	}
	return levels
}
