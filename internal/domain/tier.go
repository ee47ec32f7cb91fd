package domain

// TierCount is the fixed number of ranks in the plan. Tiers are never added or removed.
const (
	TierCount = 8
	MinLevel  = 1
	MaxLevel  = TierCount
)

// Input bounds. Larger counts or horizons are rejected by the plan service and
// capped by the formulas, so member totals stay within an int64.
const (
	MaxMembers     = 1_000_000_000
	MaxHorizonDays = 3650
)

// Tier is one rank of the compensation plan.
// JoinFee is fixed at construction; CurrentMembers is the only mutable field.
type Tier struct {
	Level          int     `json:"level"`
	JoinFee        float64 `json:"join_fee"`
	CurrentMembers int     `json:"current_members"`
}

// Table is the ordered set of tiers, index 0 holding level 1.
// It is a value type: copying a Table copies every tier.
type Table [TierCount]Tier

// Counts returns the member count of every tier in ascending level order.
func (t Table) Counts() []int {
	counts := make([]int, TierCount)
	for i, tier := range t {
		counts[i] = tier.CurrentMembers
	}
	return counts
}

// ValidLevel reports whether level names a tier of the plan.
func ValidLevel(level int) bool {
	return level >= MinLevel && level <= MaxLevel
}

// TierResult holds everything derived from a single tier's member count.
// Values are recomputed on every evaluation and never stored as ground truth.
type TierResult struct {
	Level               int     `json:"level"`
	JoinFee             float64 `json:"join_fee"`
	Members             int     `json:"members"`
	Sales               float64 `json:"sales"`
	SponsorBonus        float64 `json:"sponsor_bonus"`
	ReferralBonus       float64 `json:"referral_bonus"`
	RankBonus           float64 `json:"rank_bonus"`
	DailyBonus          float64 `json:"daily_bonus"`
	TotalDailyEarnings  float64 `json:"total_daily_earnings"`
	RequalificationDays int     `json:"requalification_days"`
}

// Bonuses returns the sum of the four bonus components.
func (r TierResult) Bonuses() float64 {
	return r.SponsorBonus + r.ReferralBonus + r.RankBonus + r.DailyBonus
}

// RequalificationStatus is the fixed-window requalification check for one tier.
// NominalCycleDays is the reference cycle length for a fully paid member and is
// informational only.
type RequalificationStatus struct {
	Level            int     `json:"level"`
	WindowEarnings   float64 `json:"window_earnings"`
	Threshold        float64 `json:"threshold"`
	Required         bool    `json:"required"`
	NominalCycleDays int     `json:"nominal_cycle_days"`
}
