package compensation

import "github.com/osse101/TierPlan_Go/internal/domain"

// ComputeTotals aggregates members, sales and bonuses over the table in
// ascending tier order, and derives company profit from them.
func ComputeTotals(cfg Config, table domain.Table) domain.Totals {
	var totals domain.Totals
	for _, tier := range table {
		res := ComputeTier(cfg, tier.Level, tier.CurrentMembers)
		totals.Members += res.Members
		totals.Sales += res.Sales
		totals.Bonuses += res.Bonuses()
	}
	totals.CompanyProfit = CompanyProfit(totals.Sales, totals.Bonuses)
	return totals
}

// CompanyProfit is what the company keeps after paying every bonus.
func CompanyProfit(sales, bonuses float64) float64 {
	return sales - bonuses
}
