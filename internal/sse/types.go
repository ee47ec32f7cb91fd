package sse

import "github.com/osse101/TierPlan_Go/internal/domain"

// PlanPayload is the SSE payload for plan updated and reset events
type PlanPayload struct {
	Members        []int                 `json:"members"`
	TotalMembers   int                   `json:"total_members"`
	TotalSales     float64               `json:"total_sales"`
	TotalBonuses   float64               `json:"total_bonuses"`
	CompanyProfit  float64               `json:"company_profit"`
	RiskLevel      domain.RiskLevel      `json:"risk_level"`
	Sustainability string                `json:"sustainability"`
	Recommendation domain.Recommendation `json:"recommendation"`
	Clamped        []int                 `json:"clamped,omitempty"`
}

// WarningPayload is the SSE payload for the warning channel
type WarningPayload struct {
	Kind    domain.NoticeKind `json:"kind"`
	Level   int               `json:"level,omitempty"`
	Message string            `json:"message"`
}

// RequalificationPayload lists the tiers whose members must requalify
type RequalificationPayload struct {
	Levels []int `json:"levels"`
}
