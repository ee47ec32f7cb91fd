package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)
)

// Plan Metrics
var (
	PlanTierMembers = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: MetricNamePlanTierMembers,
			Help: HelpTextPlanTierMembers,
		},
		[]string{LabelLevel},
	)

	PlanTotalSales = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNamePlanTotalSales,
			Help: HelpTextPlanTotalSales,
		},
	)

	PlanTotalBonuses = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNamePlanTotalBonuses,
			Help: HelpTextPlanTotalBonuses,
		},
	)

	PlanCompanyProfit = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNamePlanCompanyProfit,
			Help: HelpTextPlanCompanyProfit,
		},
	)

	PlanBonusRatio = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNamePlanBonusRatio,
			Help: HelpTextPlanBonusRatio,
		},
	)

	PlanRiskLevel = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: MetricNamePlanRiskLevel,
			Help: HelpTextPlanRiskLevel,
		},
		[]string{LabelRisk},
	)

	PlanRecommendedDaily = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNamePlanRecommendedDaily,
			Help: HelpTextPlanRecommendedDaily,
		},
	)

	PlanInputsClamped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePlanInputsClamped,
			Help: HelpTextPlanInputsClamped,
		},
	)

	PlanWarnings = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePlanWarnings,
			Help: HelpTextPlanWarnings,
		},
		[]string{LabelKind},
	)

	PlanRequalifications = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePlanRequalifications,
			Help: HelpTextPlanRequalifications,
		},
		[]string{LabelLevel},
	)
)
