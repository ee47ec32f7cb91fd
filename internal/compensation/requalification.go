package compensation

import (
	"math"

	"github.com/osse101/TierPlan_Go/internal/domain"
)

// The three requalification figures below answer different questions and must
// stay separate:
//   - InstantaneousRequalificationDays: how many days at today's payout rate
//     until earnings reach the qualification multiple.
//   - WindowedRequalificationCheck: whether earnings over one LevelDuration
//     window have already reached it.
//   - NominalRequalificationPeriod: the reference cycle for an upline member
//     paid every bonus over NominalWindowDays of daily bonus.

// InstantaneousRequalificationDays returns the per-tier deadline in days, or 0
// when the tier earns nothing.
func InstantaneousRequalificationDays(cfg Config, level, members int) int {
	return ComputeTier(cfg, level, members).RequalificationDays
}

// WindowedEarnings is the total a tier earns over one LevelDuration window:
// the one-time upper-tier bonuses plus LevelDuration days of daily bonus.
func WindowedEarnings(cfg Config, tier domain.Tier) float64 {
	if !domain.ValidLevel(tier.Level) {
		return 0
	}
	sales := float64(capMembers(tier.CurrentMembers)) * JoinFee(cfg, tier.Level)

	var oneTime float64
	if tier.Level > 1 {
		oneTime = sales * cfg.UpperTierRate()
	}
	return oneTime + sales*cfg.DailyBonusRate*float64(cfg.LevelDuration)
}

// RequalificationThreshold is the earnings level that obliges a member to rejoin.
func RequalificationThreshold(cfg Config, level int) float64 {
	return JoinFee(cfg, level) * cfg.QualificationMultiplier
}

// WindowedRequalificationCheck reports whether a tier's window earnings have
// reached the qualification multiple of its join fee.
func WindowedRequalificationCheck(cfg Config, tier domain.Tier) bool {
	if !domain.ValidLevel(tier.Level) {
		return false
	}
	return WindowedEarnings(cfg, tier) >= RequalificationThreshold(cfg, tier.Level)
}

// NominalRequalificationPeriod returns the reference cycle length in whole days.
// The rate is not gated on level and the join fee cancels out, so every tier
// reports the same figure.
func NominalRequalificationPeriod(cfg Config, level int) int {
	fee := JoinFee(cfg, level)
	rate := cfg.UpperTierRate() + cfg.DailyBonusRate*float64(cfg.NominalWindowDays)
	if fee <= 0 || rate <= 0 {
		return 0
	}
	return int(math.Floor(fee * cfg.QualificationMultiplier / (fee * rate)))
}

// RequalificationStatusFor builds the windowed status report for one tier.
func RequalificationStatusFor(cfg Config, tier domain.Tier) domain.RequalificationStatus {
	return domain.RequalificationStatus{
		Level:            tier.Level,
		WindowEarnings:   WindowedEarnings(cfg, tier),
		Threshold:        RequalificationThreshold(cfg, tier.Level),
		Required:         WindowedRequalificationCheck(cfg, tier),
		NominalCycleDays: NominalRequalificationPeriod(cfg, tier.Level),
	}
}
