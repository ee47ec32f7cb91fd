package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/TierPlan_Go/internal/compensation"
	"github.com/osse101/TierPlan_Go/internal/domain"
)

func TestPrinter_Money(t *testing.T) {
	pr := NewPrinter()

	tests := []struct {
		name  string
		value float64
		want  string
	}{
		{"zero", 0, "$0"},
		{"small", 200, "$200"},
		{"thousands", 1000, "$1,000"},
		{"top tier fee", 25600, "$25,600"},
		{"millions", 3288000, "$3,288,000"},
		{"negative", -200, "-$200"},
		{"negative millions", -10487040, "-$10,487,040"},
		{"negative cents", -0.25, "-$0.25"},
		{"rounds to zero", -0.001, "$0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pr.Money(tt.value))
		})
	}
}

func TestPrinter_PerDay(t *testing.T) {
	pr := NewPrinter()
	assert.Equal(t, "$10/day", pr.PerDay(10))
	assert.Equal(t, "$1,200/day", pr.PerDay(1200))
	assert.Equal(t, "-$75/day", pr.PerDay(-75))
}

func TestPrinter_Days(t *testing.T) {
	pr := NewPrinter()
	assert.Equal(t, NoDeadline, pr.Days(0))
	assert.Equal(t, "1 day", pr.Days(1))
	assert.Equal(t, "60 days", pr.Days(60))
}

func TestPrinter_Count(t *testing.T) {
	pr := NewPrinter()
	assert.Equal(t, "5", pr.Count(5))
	assert.Equal(t, "12,345", pr.Count(12345))
}

func TestPrinter_Ratio(t *testing.T) {
	pr := NewPrinter()
	assert.Equal(t, RatioUndefined, pr.Ratio(domain.RiskAssessment{Level: domain.RiskLow}))
	assert.Equal(t, "63.0%", pr.Ratio(domain.RiskAssessment{Ratio: 0.63, RatioDefined: true}))
}

func TestPrinter_Rate(t *testing.T) {
	pr := NewPrinter()
	assert.Equal(t, "14/day, 70/week", pr.Rate(domain.Recommendation{Daily: 14, Weekly: 70}))
}

func TestPrinter_WriteEvaluation(t *testing.T) {
	cfg := compensation.DefaultConfig()
	table := compensation.NewTable(cfg)
	table[0].CurrentMembers = 5
	eval := compensation.Evaluate(cfg, table)

	pr := NewPrinter()

	t.Run("includes every section", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, pr.WriteEvaluation(&buf, eval, ""))
		out := buf.String()

		for _, title := range []string{TitleTiers, TitleTotals, TitleRisk, TitleRecommendation, TitleWarning} {
			assert.Contains(t, out, "== "+title+" ==")
		}
		assert.Contains(t, out, "$1,000")
		assert.Contains(t, out, "$990")
		assert.Contains(t, out, string(domain.RiskLow))
		assert.Contains(t, out, "20/day, 100/week")
		assert.True(t, strings.HasSuffix(out, NoWarning+"\n"))
	})

	t.Run("prints the current warning", func(t *testing.T) {
		out := pr.Evaluation(eval, "member count cannot be negative (tier 3)")
		assert.Contains(t, out, "member count cannot be negative (tier 3)")
		assert.NotContains(t, out, "\n"+NoWarning+"\n")
	})

	t.Run("one row per tier", func(t *testing.T) {
		out := pr.Evaluation(eval, "")
		assert.Contains(t, out, "$25,600")
		assert.Contains(t, out, "$200")
	})
}

func TestPrinter_WriteTier(t *testing.T) {
	cfg := compensation.DefaultConfig()
	res := compensation.ComputeTier(cfg, 2, 10)

	var buf bytes.Buffer
	require.NoError(t, NewPrinter().WriteTier(&buf, res))

	out := buf.String()
	assert.Contains(t, out, "$4,000")
	assert.Contains(t, out, LabelTotalDaily)
}

func TestPrinter_WriteCashFlow(t *testing.T) {
	cfg := compensation.DefaultConfig()
	cf := compensation.ProjectCashFlow(cfg, 1)

	var buf bytes.Buffer
	require.NoError(t, NewPrinter().WriteCashFlow(&buf, cf))

	out := buf.String()
	assert.Contains(t, out, "== "+TitleCashFlow+" ==")
	assert.Contains(t, out, "$109,600")
	assert.Contains(t, out, "$43,032")
}

func TestPrinter_WriteCashFlow_NegativeBalance(t *testing.T) {
	cf := domain.CashFlow{Days: 30, Inflow: 3288000, Outflow: 13775040, Balance: -10487040}

	var buf bytes.Buffer
	require.NoError(t, NewPrinter().WriteCashFlow(&buf, cf))

	out := buf.String()
	assert.Contains(t, out, "-$10,487,040")
	assert.NotContains(t, out, "$-")
}

func TestPrinter_WriteRequalification(t *testing.T) {
	statuses := []domain.RequalificationStatus{
		{Level: 1, WindowEarnings: 3000, Threshold: 600, Required: true},
		{Level: 2, WindowEarnings: 0, Threshold: 1200},
	}

	var buf bytes.Buffer
	require.NoError(t, NewPrinter().WriteRequalification(&buf, statuses))

	out := buf.String()
	assert.Contains(t, out, "$3,000")
	assert.Contains(t, out, RequiredYes)
	assert.Contains(t, out, RequiredNo)
}

func TestWriteNotices(t *testing.T) {
	var buf bytes.Buffer
	notices := []domain.Notice{
		{Kind: domain.NoticeRequalification, Level: 1, Message: "first"},
		{Kind: domain.NoticeRequalification, Level: 3, Message: "second"},
	}

	require.NoError(t, WriteNotices(&buf, notices))
	assert.Equal(t, "first\nsecond\n", buf.String())
}
