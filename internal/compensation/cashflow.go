package compensation

import (
	"math"

	"github.com/osse101/TierPlan_Go/internal/domain"
)

// DailyRecruitment is the projected number of new members per day at a level.
// Adoption decays geometrically with tier depth.
func DailyRecruitment(cfg Config, level int) int {
	if !domain.ValidLevel(level) {
		return 0
	}
	base := float64(cfg.RecruitmentRate.Daily)
	return int(math.Floor(base * math.Pow(cfg.RetentionRate, float64(level-1))))
}

// ProjectCashFlow projects money in and out over the given horizon. It does
// not depend on the current table. Sponsor, referral and rank bonuses are paid
// once per new cohort while the daily bonus accrues for every day of the
// horizon. A horizon of zero or less projects nothing; one beyond
// domain.MaxHorizonDays is capped.
func ProjectCashFlow(cfg Config, days int) domain.CashFlow {
	days = max(0, min(days, domain.MaxHorizonDays))

	flow := domain.CashFlow{
		Days:  days,
		Tiers: make([]domain.TierCashFlow, 0, domain.TierCount),
	}
	for level := domain.MinLevel; level <= domain.MaxLevel; level++ {
		perDay := DailyRecruitment(cfg, level)
		newMembers := perDay * days
		revenue := float64(newMembers) * JoinFee(cfg, level)

		payoutRate := cfg.DailyBonusRate * float64(days)
		if level > 1 {
			payoutRate += cfg.UpperTierRate()
		}

		tf := domain.TierCashFlow{
			Level:            level,
			DailyRecruitment: perDay,
			NewMembers:       newMembers,
			Inflow:           revenue,
			Outflow:          revenue * payoutRate,
		}
		flow.Inflow += tf.Inflow
		flow.Outflow += tf.Outflow
		flow.Tiers = append(flow.Tiers, tf)
	}
	flow.Balance = flow.Inflow - flow.Outflow
	return flow
}

// OptimalRecruitmentRate picks a daily pace from the margin of a projection
// over OptimalHorizonDays. Thin margins throttle recruitment harder.
func OptimalRecruitmentRate(cfg Config) domain.Recommendation {
	flow := ProjectCashFlow(cfg, cfg.OptimalHorizonDays)
	base := float64(cfg.RecruitmentRate.Daily)

	daily := cfg.RecruitmentRate.Daily
	if flow.Inflow > 0 {
		switch margin := flow.Margin(); {
		case margin < LowMarginThreshold:
			daily = int(math.Floor(base * LowMarginFactor))
		case margin < MidMarginThreshold:
			daily = int(math.Floor(base * MidMarginFactor))
		}
	}
	return recommendation(cfg, daily)
}
