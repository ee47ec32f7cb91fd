package compensation

// Default plan parameters
const (
	DefaultDailyBonusRate          = 0.01
	DefaultSponsorBonusRate        = 0.05
	DefaultReferralBonusRate       = 0.07
	DefaultRankBonusRate           = 0.5
	DefaultQualificationMultiplier = 3
	DefaultMinWithdrawal           = 35
	DefaultRecruitmentDaily        = 20
	DefaultRecruitmentWeekly       = 100
	DefaultRetentionRate           = 0.7
	DefaultLevelDuration           = 5
	DefaultBaseJoinFee             = 200
	DefaultWorkWeekDays            = 5
	DefaultNominalWindowDays       = 30
	DefaultOptimalHorizonDays      = 30
)

// Risk thresholds on the bonus-to-sales ratio. Both are strict: a ratio equal
// to a threshold falls in the lower band.
const (
	HighRiskRatio   = 0.8
	MediumRiskRatio = 0.6
)

// Recruitment throttles applied to the baseline daily rate per risk band
const (
	HighRiskRecruitmentFactor   = 0.5
	MediumRiskRecruitmentFactor = 0.7
)

// Projection margin bands used by the optimal recruitment rate
const (
	LowMarginThreshold = 0.2
	MidMarginThreshold = 0.4
	LowMarginFactor    = 0.6
	MidMarginFactor    = 0.8
)

// Error messages
const (
	ErrMsgReadConfigFailed  = "failed to read compensation config %s: %w"
	ErrMsgUnknownConfigKeys = "unknown keys in compensation config %s: %v"
	ErrMsgNonPositiveFee    = "base join fee must be positive"
	ErrMsgNegativeRate      = "bonus and retention rates cannot be negative"
	ErrMsgNonPositiveMult   = "qualification multiplier must be positive"
	ErrMsgNegativeRecruit   = "recruitment rates cannot be negative"
	ErrMsgNonPositiveWindow = "level duration, work week and horizon windows must be positive"
	ErrMsgRecruitTooHigh    = "recruitment rates exceed the member limit"
	ErrMsgHorizonTooLong    = "optimal horizon exceeds the projection limit"
)
