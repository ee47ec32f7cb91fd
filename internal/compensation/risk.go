package compensation

import (
	"math"

	"github.com/osse101/TierPlan_Go/internal/domain"
)

// BonusRatio returns bonuses over sales. The ratio is undefined without sales,
// in which case ok is false and the ratio is 0.
func BonusRatio(sales, bonuses float64) (ratio float64, ok bool) {
	if sales == 0 {
		return 0, false
	}
	return bonuses / sales, true
}

// ClassifyRisk buckets the bonus-to-sales ratio. Thresholds are strict, so a
// ratio sitting exactly on one falls in the lower band. No sales means LOW.
func ClassifyRisk(sales, bonuses float64) domain.RiskAssessment {
	ratio, ok := BonusRatio(sales, bonuses)
	level, label := riskBand(ratio)
	return domain.RiskAssessment{
		Level:               level,
		SustainabilityLabel: label,
		Ratio:               ratio,
		RatioDefined:        ok,
	}
}

func riskBand(ratio float64) (domain.RiskLevel, string) {
	switch {
	case ratio > HighRiskRatio:
		return domain.RiskHigh, domain.SustainabilityHigh
	case ratio > MediumRiskRatio:
		return domain.RiskMedium, domain.SustainabilityMedium
	default:
		return domain.RiskLow, domain.SustainabilityLow
	}
}

// RecommendRate throttles the baseline daily recruitment according to the
// risk band of ratio. Weekly is always daily times the work week.
func RecommendRate(cfg Config, ratio float64) domain.Recommendation {
	base := float64(cfg.RecruitmentRate.Daily)

	daily := cfg.RecruitmentRate.Daily
	switch {
	case ratio > HighRiskRatio:
		daily = int(math.Floor(base * HighRiskRecruitmentFactor))
	case ratio > MediumRiskRatio:
		daily = int(math.Floor(base * MediumRiskRecruitmentFactor))
	}
	return recommendation(cfg, daily)
}

func recommendation(cfg Config, daily int) domain.Recommendation {
	return domain.Recommendation{
		Daily:  daily,
		Weekly: daily * cfg.WorkWeekDays,
	}
}
