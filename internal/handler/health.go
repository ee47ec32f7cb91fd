package handler

import (
	"net/http"

	"github.com/osse101/TierPlan_Go/internal/domain"
	"github.com/osse101/TierPlan_Go/internal/logger"
	"github.com/osse101/TierPlan_Go/internal/plan"
)

// Health statuses
const (
	HealthStatusOK       = "ok"
	HealthStatusNotReady = "not_ready"
)

// HealthResponse represents the response for health endpoints
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// ReadinessResponse reports whether the plan can be evaluated
type ReadinessResponse struct {
	Status  string           `json:"status"`
	Message string           `json:"message,omitempty"`
	Tiers   int              `json:"tiers"`
	Members int              `json:"members"`
	Risk    domain.RiskLevel `json:"risk,omitempty"`
}

// HandleHealthz provides a basic liveness check
// @Summary Liveness check
// @Description Returns OK if the process is serving requests
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /healthz [get]
func HandleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, HealthResponse{Status: HealthStatusOK})
	}
}

// HandleReadyz checks that the active rates are valid and the table is loaded
// @Summary Readiness check
// @Tags health
// @Produce json
// @Success 200 {object} ReadinessResponse
// @Failure 503 {object} ReadinessResponse
// @Router /readyz [get]
func HandleReadyz(svc plan.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if err := svc.Config().Validate(); err != nil {
			logger.FromContext(ctx).Error(LogMsgNotReady, "error", err)
			respondJSON(w, http.StatusServiceUnavailable, ReadinessResponse{
				Status:  HealthStatusNotReady,
				Message: err.Error(),
			})
			return
		}

		eval := svc.Evaluate(ctx)
		respondJSON(w, http.StatusOK, ReadinessResponse{
			Status:  HealthStatusOK,
			Tiers:   len(eval.Tiers),
			Members: eval.Totals.Members,
			Risk:    eval.Risk.Level,
		})
	}
}
