package report

// Section titles
const (
	TitleTiers           = "Tiers"
	TitleTotals          = "Totals"
	TitleRisk            = "Risk"
	TitleRecommendation  = "Recommended recruitment"
	TitleWarning         = "Warning"
	TitleCashFlow        = "Cash flow"
	TitleRequalification = "Requalification"
)

// Column headers for the tier table
const (
	ColLevel    = "LEVEL"
	ColFee      = "JOIN FEE"
	ColMembers  = "MEMBERS"
	ColSales    = "SALES"
	ColSponsor  = "SPONSOR"
	ColReferral = "REFERRAL"
	ColRank     = "RANK"
	ColDaily    = "DAILY"
	ColRequal   = "REQUALIFY"
	ColRecruits = "RECRUITS/DAY"
	ColNew      = "NEW MEMBERS"
	ColInflow   = "INFLOW"
	ColOutflow  = "OUTFLOW"
	ColWindow   = "WINDOW EARNINGS"
	ColLimit    = "THRESHOLD"
	ColRequired = "REQUIRED"
)

// Display formats
const (
	FormatMoney    = "$%v"
	FormatPerDay   = "$%v/day"
	FormatDays     = "%d days"
	FormatOneDay   = "1 day"
	FormatCount    = "%d"
	FormatRatio    = "%.1f%%"
	FormatRate     = "%d/day, %d/week"
	FormatTitle    = "== %s =="
	FormatKeyValue = "%s:\t%s\n"
	NoDeadline     = "-"
	RatioUndefined = "n/a"
	NoWarning      = "none"
	RequiredYes    = "yes"
	RequiredNo     = "no"
	MaxMoneyDigits = 2
	NegativeSign   = "-"
)

// Summary labels
const (
	LabelMembers    = "Members"
	LabelSales      = "Sales"
	LabelBonuses    = "Bonuses"
	LabelProfit     = "Company profit"
	LabelLevel      = "Level"
	LabelSustain    = "Sustainability"
	LabelRatio      = "Bonus ratio"
	LabelDays       = "Days"
	LabelInflow     = "Inflow"
	LabelOutflow    = "Outflow"
	LabelBalance    = "Balance"
	LabelMargin     = "Margin"
	LabelPace       = "Pace"
	LabelTotalDaily = "Total daily earnings"
)

// tabwriter settings
const (
	tabMinWidth = 0
	tabWidth    = 8
	tabPadding  = 2
	tabPadChar  = ' '
)
