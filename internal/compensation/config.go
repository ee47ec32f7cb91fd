// Package compensation holds the financial model of the tiered plan: join fees,
// bonus formulas, requalification, risk classification and cash-flow projection.
// Every function is pure over an explicitly passed Config and Table.
package compensation

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/osse101/TierPlan_Go/internal/domain"
)

// RecruitmentRate is the baseline recruitment pace.
// Weekly is an independent figure and is not used by any formula; weekly
// recommendations are derived from the daily rate.
type RecruitmentRate struct {
	Daily  int `toml:"daily" json:"daily"`
	Weekly int `toml:"weekly" json:"weekly"`
}

// Config is the immutable parameter set of the plan. Pass it by value.
type Config struct {
	DailyBonusRate          float64         `toml:"daily_bonus_rate" json:"daily_bonus_rate"`
	SponsorBonusRate        float64         `toml:"sponsor_bonus_rate" json:"sponsor_bonus_rate"`
	ReferralBonusRate       float64         `toml:"referral_bonus_rate" json:"referral_bonus_rate"`
	RankBonusRate           float64         `toml:"rank_bonus_rate" json:"rank_bonus_rate"`
	QualificationMultiplier float64         `toml:"qualification_multiplier" json:"qualification_multiplier"`
	MinWithdrawal           float64         `toml:"min_withdrawal" json:"min_withdrawal"`
	RecruitmentRate         RecruitmentRate `toml:"recruitment_rate" json:"recruitment_rate"`
	RetentionRate           float64         `toml:"retention_rate" json:"retention_rate"`
	LevelDuration           int             `toml:"level_duration" json:"level_duration"`
	BaseJoinFee             float64         `toml:"base_join_fee" json:"base_join_fee"`
	WorkWeekDays            int             `toml:"work_week_days" json:"work_week_days"`
	NominalWindowDays       int             `toml:"nominal_window_days" json:"nominal_window_days"`
	OptimalHorizonDays      int             `toml:"optimal_horizon_days" json:"optimal_horizon_days"`
}

// DefaultConfig returns the standard plan parameters.
func DefaultConfig() Config {
	return Config{
		DailyBonusRate:          DefaultDailyBonusRate,
		SponsorBonusRate:        DefaultSponsorBonusRate,
		ReferralBonusRate:       DefaultReferralBonusRate,
		RankBonusRate:           DefaultRankBonusRate,
		QualificationMultiplier: DefaultQualificationMultiplier,
		MinWithdrawal:           DefaultMinWithdrawal,
		RecruitmentRate: RecruitmentRate{
			Daily:  DefaultRecruitmentDaily,
			Weekly: DefaultRecruitmentWeekly,
		},
		RetentionRate:      DefaultRetentionRate,
		LevelDuration:      DefaultLevelDuration,
		BaseJoinFee:        DefaultBaseJoinFee,
		WorkWeekDays:       DefaultWorkWeekDays,
		NominalWindowDays:  DefaultNominalWindowDays,
		OptimalHorizonDays: DefaultOptimalHorizonDays,
	}
}

// UpperTierRate is the combined one-time payout rate (sponsor, referral, rank)
// paid on tiers above the first.
func (c Config) UpperTierRate() float64 {
	return c.SponsorBonusRate + c.ReferralBonusRate + c.RankBonusRate
}

// Validate rejects parameter sets the formulas cannot evaluate meaningfully.
func (c Config) Validate() error {
	if c.BaseJoinFee <= 0 {
		return fmt.Errorf("%w: %s", domain.ErrInvalidConfig, ErrMsgNonPositiveFee)
	}
	if c.DailyBonusRate < 0 || c.SponsorBonusRate < 0 || c.ReferralBonusRate < 0 ||
		c.RankBonusRate < 0 || c.RetentionRate < 0 {
		return fmt.Errorf("%w: %s", domain.ErrInvalidConfig, ErrMsgNegativeRate)
	}
	if c.QualificationMultiplier <= 0 {
		return fmt.Errorf("%w: %s", domain.ErrInvalidConfig, ErrMsgNonPositiveMult)
	}
	if c.RecruitmentRate.Daily < 0 || c.RecruitmentRate.Weekly < 0 {
		return fmt.Errorf("%w: %s", domain.ErrInvalidConfig, ErrMsgNegativeRecruit)
	}
	if c.RecruitmentRate.Daily > domain.MaxMembers || c.RecruitmentRate.Weekly > domain.MaxMembers {
		return fmt.Errorf("%w: %s", domain.ErrInvalidConfig, ErrMsgRecruitTooHigh)
	}
	if c.LevelDuration <= 0 || c.WorkWeekDays <= 0 || c.NominalWindowDays <= 0 || c.OptimalHorizonDays <= 0 {
		return fmt.Errorf("%w: %s", domain.ErrInvalidConfig, ErrMsgNonPositiveWindow)
	}
	if c.OptimalHorizonDays > domain.MaxHorizonDays {
		return fmt.Errorf("%w: %s", domain.ErrInvalidConfig, ErrMsgHorizonTooLong)
	}
	return nil
}

// LoadConfigFile decodes a TOML file on top of DefaultConfig. Keys that are
// absent keep their defaults; unknown keys are rejected.
func LoadConfigFile(path string) (Config, error) {
	cfg := DefaultConfig()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf(ErrMsgReadConfigFailed, path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("%w: "+ErrMsgUnknownConfigKeys, domain.ErrInvalidConfig, path, undecoded)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
