// Package report renders plan results as aligned plain text for the CLI and
// the report endpoint.
package report

import (
	"fmt"
	"io"
	"math"
	"strings"
	"text/tabwriter"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/osse101/TierPlan_Go/internal/domain"
)

// Printer formats plan figures with English digit grouping
type Printer struct {
	p *message.Printer
}

// NewPrinter creates a printer for English output
func NewPrinter() *Printer {
	return &Printer{p: message.NewPrinter(language.English)}
}

// Money formats an amount as "$1,000", or "-$1,000" when negative
func (pr *Printer) Money(v float64) string {
	return pr.signed(FormatMoney, v)
}

// PerDay formats a daily amount as "$10/day"
func (pr *Printer) PerDay(v float64) string {
	return pr.signed(FormatPerDay, v)
}

// signed puts the minus sign ahead of the currency symbol. Amounts that
// round to zero are printed unsigned.
func (pr *Printer) signed(format string, v float64) string {
	sign := ""
	if math.Round(v*math.Pow10(MaxMoneyDigits)) < 0 {
		sign = NegativeSign
	}
	return sign + pr.p.Sprintf(format, number.Decimal(math.Abs(v), number.MaxFractionDigits(MaxMoneyDigits)))
}

// Count formats an integer with grouping
func (pr *Printer) Count(n int) string {
	return pr.p.Sprintf(FormatCount, n)
}

// Days formats a requalification period. Zero means no deadline.
func (pr *Printer) Days(n int) string {
	switch {
	case n <= 0:
		return NoDeadline
	case n == 1:
		return FormatOneDay
	default:
		return pr.p.Sprintf(FormatDays, n)
	}
}

// Ratio formats the bonus-to-sales ratio as a percentage
func (pr *Printer) Ratio(risk domain.RiskAssessment) string {
	if !risk.RatioDefined {
		return RatioUndefined
	}
	return pr.p.Sprintf(FormatRatio, risk.Ratio*100)
}

// Rate formats a recruitment recommendation
func (pr *Printer) Rate(rec domain.Recommendation) string {
	return pr.p.Sprintf(FormatRate, rec.Daily, rec.Weekly)
}

// WriteEvaluation renders the full result set followed by the current warning
func (pr *Printer) WriteEvaluation(w io.Writer, eval domain.Evaluation, warning string) error {
	var b strings.Builder

	pr.tiers(&b, eval.Tiers[:])
	b.WriteString("\n")

	section(&b, TitleTotals)
	pairs(&b,
		LabelMembers, pr.Count(eval.Totals.Members),
		LabelSales, pr.Money(eval.Totals.Sales),
		LabelBonuses, pr.Money(eval.Totals.Bonuses),
		LabelProfit, pr.Money(eval.Totals.CompanyProfit),
	)
	b.WriteString("\n")

	pr.risk(&b, eval.Risk)
	b.WriteString("\n")

	section(&b, TitleRecommendation)
	pairs(&b, LabelPace, pr.Rate(eval.Recommendation))
	b.WriteString("\n")

	if warning == "" {
		warning = NoWarning
	}
	section(&b, TitleWarning)
	b.WriteString(warning + "\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// Evaluation returns WriteEvaluation's output as a string
func (pr *Printer) Evaluation(eval domain.Evaluation, warning string) string {
	var b strings.Builder
	_ = pr.WriteEvaluation(&b, eval, warning)
	return b.String()
}

// WriteTier renders a single tier result
func (pr *Printer) WriteTier(w io.Writer, res domain.TierResult) error {
	var b strings.Builder
	pr.tiers(&b, []domain.TierResult{res})
	pairs(&b, LabelTotalDaily, pr.PerDay(res.TotalDailyEarnings))
	_, err := io.WriteString(w, b.String())
	return err
}

// WriteCashFlow renders a projection with its per-tier breakdown
func (pr *Printer) WriteCashFlow(w io.Writer, cf domain.CashFlow) error {
	var b strings.Builder
	section(&b, TitleCashFlow)

	tw := newTabWriter(&b)
	fmt.Fprintln(tw, strings.Join([]string{ColLevel, ColRecruits, ColNew, ColInflow, ColOutflow}, "\t"))
	for _, t := range cf.Tiers {
		fmt.Fprintln(tw, strings.Join([]string{
			pr.Count(t.Level),
			pr.Count(t.DailyRecruitment),
			pr.Count(t.NewMembers),
			pr.Money(t.Inflow),
			pr.Money(t.Outflow),
		}, "\t"))
	}
	_ = tw.Flush()

	b.WriteString("\n")
	pairs(&b,
		LabelDays, pr.Count(cf.Days),
		LabelInflow, pr.Money(cf.Inflow),
		LabelOutflow, pr.Money(cf.Outflow),
		LabelBalance, pr.Money(cf.Balance),
		LabelMargin, pr.p.Sprintf(FormatRatio, cf.Margin()*100),
	)
	_, err := io.WriteString(w, b.String())
	return err
}

// WriteRequalification renders the fixed-window check for every tier
func (pr *Printer) WriteRequalification(w io.Writer, statuses []domain.RequalificationStatus) error {
	var b strings.Builder
	section(&b, TitleRequalification)

	tw := newTabWriter(&b)
	fmt.Fprintln(tw, strings.Join([]string{ColLevel, ColWindow, ColLimit, ColRequired}, "\t"))
	for _, s := range statuses {
		required := RequiredNo
		if s.Required {
			required = RequiredYes
		}
		fmt.Fprintln(tw, strings.Join([]string{
			pr.Count(s.Level),
			pr.Money(s.WindowEarnings),
			pr.Money(s.Threshold),
			required,
		}, "\t"))
	}
	_ = tw.Flush()

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteNotices prints one notice per line
func WriteNotices(w io.Writer, notices []domain.Notice) error {
	for _, n := range notices {
		if _, err := fmt.Fprintln(w, n.Message); err != nil {
			return err
		}
	}
	return nil
}

func (pr *Printer) tiers(b *strings.Builder, results []domain.TierResult) {
	section(b, TitleTiers)
	tw := newTabWriter(b)
	fmt.Fprintln(tw, strings.Join([]string{
		ColLevel, ColFee, ColMembers, ColSales, ColSponsor, ColReferral, ColRank, ColDaily, ColRequal,
	}, "\t"))
	for _, r := range results {
		fmt.Fprintln(tw, strings.Join([]string{
			pr.Count(r.Level),
			pr.Money(r.JoinFee),
			pr.Count(r.Members),
			pr.Money(r.Sales),
			pr.Money(r.SponsorBonus),
			pr.Money(r.ReferralBonus),
			pr.Money(r.RankBonus),
			pr.PerDay(r.DailyBonus),
			pr.Days(r.RequalificationDays),
		}, "\t"))
	}
	_ = tw.Flush()
}

func (pr *Printer) risk(b *strings.Builder, risk domain.RiskAssessment) {
	section(b, TitleRisk)
	pairs(b,
		LabelLevel, string(risk.Level),
		LabelSustain, risk.SustainabilityLabel,
		LabelRatio, pr.Ratio(risk),
	)
}

func section(b *strings.Builder, title string) {
	b.WriteString(fmt.Sprintf(FormatTitle, title))
	b.WriteString("\n")
}

// pairs writes aligned "label: value" lines from alternating arguments
func pairs(b *strings.Builder, kv ...string) {
	tw := newTabWriter(b)
	for i := 0; i+1 < len(kv); i += 2 {
		fmt.Fprintf(tw, FormatKeyValue, kv[i], kv[i+1])
	}
	_ = tw.Flush()
}

func newTabWriter(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, tabMinWidth, tabWidth, tabPadding, tabPadChar, 0)
}
