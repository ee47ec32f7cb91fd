package domain

// RiskLevel is the qualitative sustainability bucket of the plan.
type RiskLevel string

const (
	RiskLow    RiskLevel = "LOW"
	RiskMedium RiskLevel = "MEDIUM"
	RiskHigh   RiskLevel = "HIGH"
)

// Sustainability labels reported alongside each risk level
const (
	SustainabilityHigh   = "< 30 days"
	SustainabilityMedium = "30-90 days"
	SustainabilityLow    = "90+ days"
)

// Totals aggregates the whole table.
type Totals struct {
	Members       int     `json:"members"`
	Sales         float64 `json:"sales"`
	Bonuses       float64 `json:"bonuses"`
	CompanyProfit float64 `json:"company_profit"`
}

// RiskAssessment is the outcome of classifying the bonus-to-sales ratio.
// RatioDefined is false when there are no sales; Ratio is then 0.
type RiskAssessment struct {
	Level               RiskLevel `json:"level"`
	SustainabilityLabel string    `json:"sustainability_label"`
	Ratio               float64   `json:"ratio"`
	RatioDefined        bool      `json:"ratio_defined"`
}

// Recommendation is a recruitment pace in members per day and per work week.
type Recommendation struct {
	Daily  int `json:"daily"`
	Weekly int `json:"weekly"`
}

// TierCashFlow is one tier's share of a cash-flow projection.
type TierCashFlow struct {
	Level            int     `json:"level"`
	DailyRecruitment int     `json:"daily_recruitment"`
	NewMembers       int     `json:"new_members"`
	Inflow           float64 `json:"inflow"`
	Outflow          float64 `json:"outflow"`
}

// CashFlow is a forward projection over a number of days.
type CashFlow struct {
	Days    int            `json:"days"`
	Inflow  float64        `json:"inflow"`
	Outflow float64        `json:"outflow"`
	Balance float64        `json:"balance"`
	Tiers   []TierCashFlow `json:"tiers"`
}

// Margin returns balance over inflow, or 0 when nothing flows in.
func (c CashFlow) Margin() float64 {
	if c.Inflow <= 0 {
		return 0
	}
	return c.Balance / c.Inflow
}

// Evaluation is the complete result set of one pass over the table.
type Evaluation struct {
	Tiers           [TierCount]TierResult            `json:"tiers"`
	Totals          Totals                           `json:"totals"`
	Risk            RiskAssessment                   `json:"risk"`
	Recommendation  Recommendation                   `json:"recommendation"`
	Requalification [TierCount]RequalificationStatus `json:"requalification"`
}
