package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/TierPlan_Go/internal/compensation"
	"github.com/osse101/TierPlan_Go/internal/domain"
	"github.com/osse101/TierPlan_Go/internal/event"
	"github.com/osse101/TierPlan_Go/internal/handler"
	"github.com/osse101/TierPlan_Go/internal/notice"
	"github.com/osse101/TierPlan_Go/internal/plan"
)

func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	svc := plan.NewService(compensation.DefaultConfig(), notice.NewBoard(), event.NewMemoryBus(), plan.Options{})
	srv := NewServer(Options{Port: 0, RateLimitRPS: 1000, RateLimitBurst: 1000}, svc, nil)
	return srv.Handler()
}

func call(h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestServer_Health(t *testing.T) {
	h := newTestServer(t)

	rec := call(h, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, HeaderValueNoSniff, rec.Header().Get(HeaderContentType))

	rec = call(h, http.MethodGet, "/readyz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"tiers":8`)

	rec = call(h, http.MethodGet, "/version", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_version")
}

func TestServer_Metrics(t *testing.T) {
	h := newTestServer(t)

	call(h, http.MethodGet, "/api/v1/plan", "")
	rec := call(h, http.MethodGet, "/metrics", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "http_requests_total")
}

func TestServer_PlanLifecycle(t *testing.T) {
	h := newTestServer(t)

	// Fresh table
	rec := call(h, http.MethodGet, "/api/v1/plan", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var initial handler.PlanResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &initial))
	assert.Equal(t, make([]int, domain.TierCount), initial.Members)
	assert.Equal(t, domain.RiskLow, initial.Evaluation.Risk.Level)

	// Replace the table
	rec = call(h, http.MethodPut, "/api/v1/plan/tiers", `{"members":[0,10,0,0,0,0,0,0]}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var set plan.SetResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &set))
	assert.InDelta(t, 4000.0, set.Evaluation.Totals.Sales, 1e-9)
	assert.InDelta(t, 2520.0, set.Evaluation.Totals.Bonuses, 1e-9)
	assert.Equal(t, domain.RiskMedium, set.Evaluation.Risk.Level)
	assert.Equal(t, domain.Recommendation{Daily: 14, Weekly: 70}, set.Evaluation.Recommendation)

	// One tier
	rec = call(h, http.MethodGet, "/api/v1/plan/tiers/2", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var tier domain.TierResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tier))
	assert.Equal(t, 10, tier.Members)

	// Negative count is clamped and raises a warning
	rec = call(h, http.MethodPut, "/api/v1/plan/tiers/3", `{"members":-2}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &set))
	assert.Equal(t, []int{3}, set.Clamped)
	assert.Equal(t, 0, set.Evaluation.Tiers[2].Members)

	rec = call(h, http.MethodGet, "/api/v1/plan/warning", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "member count cannot be negative (tier 3)")

	// Report
	rec = call(h, http.MethodGet, "/api/v1/plan/report", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "$4,000")
	assert.Contains(t, rec.Body.String(), "member count cannot be negative (tier 3)")

	// Reset
	rec = call(h, http.MethodDelete, "/api/v1/plan/tiers", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var reset handler.PlanResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &reset))
	assert.Zero(t, reset.Evaluation.Totals.Sales)

	rec = call(h, http.MethodGet, "/api/v1/plan/warning", "")
	assert.JSONEq(t, `{"message":""}`, rec.Body.String())
}

func TestServer_Projections(t *testing.T) {
	h := newTestServer(t)

	rec := call(h, http.MethodGet, "/api/v1/plan/cashflow?days=1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var cf domain.CashFlow
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cf))
	assert.InDelta(t, 109600.0, cf.Inflow, 1e-6)
	assert.InDelta(t, 43032.0, cf.Balance, 1e-6)

	rec = call(h, http.MethodGet, "/api/v1/plan/recruitment/optimal", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"daily":12,"weekly":60}`, rec.Body.String())

	rec = call(h, http.MethodGet, "/api/v1/plan/cashflow?days=-3", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = call(h, http.MethodGet, "/api/v1/plan/cashflow?days=461168601842738790", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_MemberLimit(t *testing.T) {
	h := newTestServer(t)

	rec := call(h, http.MethodPut, "/api/v1/plan/tiers", `{"members":[9223372036854775807,1,0,0,0,0,0,0]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), handler.ErrMsgMemberLimitError)

	rec = call(h, http.MethodPut, "/api/v1/plan/tiers/2", `{"members":1000000001}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = call(h, http.MethodGet, "/api/v1/plan", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var resp handler.PlanResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, make([]int, domain.TierCount), resp.Members)
}

func TestServer_Requalification(t *testing.T) {
	h := newTestServer(t)

	rec := call(h, http.MethodPut, "/api/v1/plan/tiers", `{"members":[60,4,5,0,0,0,0,0]}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = call(h, http.MethodPost, "/api/v1/plan/requalification/check", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var resp handler.RequalificationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, []int{1, 3}, resp.Levels)

	rec = call(h, http.MethodGet, "/api/v1/plan/warning", "")
	assert.Contains(t, rec.Body.String(), "tier 3 members must requalify")
}

func TestServer_NotFound(t *testing.T) {
	h := newTestServer(t)

	rec := call(h, http.MethodGet, "/api/v1/plan/tiers/9", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = call(h, http.MethodGet, "/api/v1/nope", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
