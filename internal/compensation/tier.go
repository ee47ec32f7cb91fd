package compensation

import (
	"math"

	"github.com/osse101/TierPlan_Go/internal/domain"
)

// JoinFee returns the entry fee of a level: the base fee doubled once per level above the first.
func JoinFee(cfg Config, level int) float64 {
	if !domain.ValidLevel(level) {
		return 0
	}
	return cfg.BaseJoinFee * float64(int64(1)<<(level-1))
}

// NewTable builds the tier table with every fee set and no members.
func NewTable(cfg Config) domain.Table {
	var table domain.Table
	for i := range table {
		level := i + 1
		table[i] = domain.Tier{
			Level:   level,
			JoinFee: JoinFee(cfg, level),
		}
	}
	return table
}

// ClampMembers maps a negative member count to zero and reports whether it did.
func ClampMembers(members int) (int, bool) {
	if members < 0 {
		return 0, true
	}
	return members, false
}

// capMembers bounds a count to domain.MaxMembers.
func capMembers(members int) int {
	return min(members, domain.MaxMembers)
}

// ComputeTier derives sales, the bonus breakdown and the requalification deadline
// for one tier. Sponsor, referral and rank bonuses are paid on levels above the
// first only; the daily bonus is paid on every level.
//
// Members must already be clamped; counts above domain.MaxMembers are capped.
// An unknown level yields a zero result.
func ComputeTier(cfg Config, level, members int) domain.TierResult {
	if !domain.ValidLevel(level) {
		return domain.TierResult{Level: level}
	}
	members = capMembers(members)

	fee := JoinFee(cfg, level)
	sales := float64(members) * fee

	res := domain.TierResult{
		Level:      level,
		JoinFee:    fee,
		Members:    members,
		Sales:      sales,
		DailyBonus: sales * cfg.DailyBonusRate,
	}
	if level > 1 {
		res.SponsorBonus = sales * cfg.SponsorBonusRate
		res.ReferralBonus = sales * cfg.ReferralBonusRate
		res.RankBonus = sales * cfg.RankBonusRate
	}

	res.TotalDailyEarnings = res.SponsorBonus + res.ReferralBonus + res.RankBonus + res.DailyBonus
	res.RequalificationDays = daysUntilRequalification(cfg, fee, res.TotalDailyEarnings)
	return res
}

// daysUntilRequalification is the number of whole days of combined payouts
// after which earnings reach the qualification multiple of the join fee.
// Zero earnings mean there is no deadline and yield 0.
func daysUntilRequalification(cfg Config, fee, dailyEarnings float64) int {
	if dailyEarnings <= 0 {
		return 0
	}
	return int(math.Ceil(fee * cfg.QualificationMultiplier / dailyEarnings))
}
