package handler

import (
	"net/http"

	"github.com/osse101/TierPlan_Go/internal/domain"
	"github.com/osse101/TierPlan_Go/internal/logger"
	"github.com/osse101/TierPlan_Go/internal/plan"
	"github.com/osse101/TierPlan_Go/internal/report"
)

// PlanResponse is the current table together with its full evaluation
type PlanResponse struct {
	Members    []int             `json:"members"`
	Evaluation domain.Evaluation `json:"evaluation"`
}

// SetTableRequest replaces every tier's member count.
// Negative counts are accepted and clamped to zero.
type SetTableRequest struct {
	Members []int `json:"members" validate:"required,tiertable"`
}

// SetTierRequest replaces one tier's member count
type SetTierRequest struct {
	Members *int `json:"members" validate:"required"`
}

// WarningResponse carries the current notice, if any
type WarningResponse struct {
	Message string         `json:"message"`
	Notice  *domain.Notice `json:"notice,omitempty"`
}

// RequalificationResponse lists the notices raised by a manual check
type RequalificationResponse struct {
	Levels  []int           `json:"levels"`
	Notices []domain.Notice `json:"notices"`
}

// HandleGetPlan returns the full evaluation of the current table
// @Summary Get plan
// @Description Current member counts and every derived figure
// @Tags plan
// @Produce json
// @Success 200 {object} PlanResponse
// @Router /plan [get]
func HandleGetPlan(svc plan.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		table, eval := svc.Snapshot(r.Context())
		respondJSON(w, http.StatusOK, PlanResponse{
			Members:    table.Counts(),
			Evaluation: eval,
		})
	}
}

// HandleGetReport renders the evaluation as plain text
// @Summary Get plan report
// @Description Human-readable plan summary with the current warning
// @Tags plan
// @Produce plain
// @Success 200 {string} string
// @Router /plan/report [get]
func HandleGetReport(svc plan.Service) http.HandlerFunc {
	printer := report.NewPrinter()
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		warning := ""
		if n, ok := svc.Warning(ctx); ok {
			warning = n.Message
		}

		buf := getBuffer()
		defer putBuffer(buf)
		if err := printer.WriteEvaluation(buf, svc.Evaluate(ctx), warning); err != nil {
			logger.FromContext(ctx).Error(LogMsgReportWriteFailed, "error", err)
			respondError(w, http.StatusInternalServerError, ErrMsgRenderReportFail)
			return
		}

		w.Header().Set("Content-Type", ContentTypeText)
		w.WriteHeader(http.StatusOK)
		if _, err := buf.WriteTo(w); err != nil {
			logger.FromContext(ctx).Error(LogMsgReportWriteFailed, "error", err)
		}
	}
}

// HandleSetTable replaces all member counts
// @Summary Set member counts
// @Description Replace all eight member counts. Negative counts are clamped to zero and raise a warning.
// @Tags plan
// @Accept json
// @Produce json
// @Param request body SetTableRequest true "Member counts, one per tier"
// @Success 200 {object} plan.SetResult
// @Failure 400 {object} ValidationErrorResponse
// @Router /plan/tiers [put]
func HandleSetTable(svc plan.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req SetTableRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Set table"); err != nil {
			return
		}
		LogRequestFields(log, "members", req.Members)

		res, err := svc.SetTable(r.Context(), req.Members)
		if err != nil {
			respondServiceError(w, r, ErrMsgSetTableFailed, err)
			return
		}

		if len(res.Clamped) > 0 {
			log.Warn(LogMsgInputsClamped, "levels", res.Clamped)
		}
		log.Info(LogMsgPlanUpdated, "members", res.Evaluation.Totals.Members)
		respondJSON(w, http.StatusOK, res)
	}
}

// HandleResetTable sets every member count back to zero
// @Summary Reset member counts
// @Tags plan
// @Produce json
// @Success 200 {object} PlanResponse
// @Router /plan/tiers [delete]
func HandleResetTable(svc plan.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		table, eval := svc.Reset(ctx)
		logger.FromContext(ctx).Info(LogMsgPlanReset)
		respondJSON(w, http.StatusOK, PlanResponse{
			Members:    table.Counts(),
			Evaluation: eval,
		})
	}
}

// HandleGetTier returns one tier's derived figures
// @Summary Get tier
// @Tags plan
// @Produce json
// @Param level path int true "Tier level (1-8)"
// @Success 200 {object} domain.TierResult
// @Failure 400 {object} ErrorResponse
// @Router /plan/tiers/{level} [get]
func HandleGetTier(svc plan.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		level, ok := GetLevelParam(r, w)
		if !ok {
			return
		}

		res, err := svc.Tier(r.Context(), level)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetTierFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, res)
	}
}

// HandleSetTier replaces one tier's member count
// @Summary Set tier members
// @Description Negative counts are clamped to zero and raise a warning.
// @Tags plan
// @Accept json
// @Produce json
// @Param level path int true "Tier level (1-8)"
// @Param request body SetTierRequest true "Member count"
// @Success 200 {object} plan.SetResult
// @Failure 400 {object} ErrorResponse
// @Router /plan/tiers/{level} [put]
func HandleSetTier(svc plan.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		level, ok := GetLevelParam(r, w)
		if !ok {
			return
		}

		var req SetTierRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Set tier"); err != nil {
			return
		}
		LogRequestFields(log, "level", level, "members", *req.Members)

		res, err := svc.SetMembers(r.Context(), level, *req.Members)
		if err != nil {
			respondServiceError(w, r, ErrMsgSetTierFailed, err)
			return
		}

		if len(res.Clamped) > 0 {
			log.Warn(LogMsgInputsClamped, "levels", res.Clamped)
		}
		log.Info(LogMsgPlanUpdated, "level", level, "members", res.Evaluation.Tiers[level-1].Members)
		respondJSON(w, http.StatusOK, res)
	}
}

// HandleCashFlow projects recruitment cash flow over a number of days
// @Summary Project cash flow
// @Tags plan
// @Produce json
// @Param days query int false "Projection horizon in days (default 30)"
// @Success 200 {object} domain.CashFlow
// @Failure 400 {object} ErrorResponse
// @Router /plan/cashflow [get]
func HandleCashFlow(svc plan.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		days, ok := GetDaysParam(r, w)
		if !ok {
			return
		}

		cf, err := svc.ProjectCashFlow(r.Context(), days)
		if err != nil {
			respondServiceError(w, r, ErrMsgCashFlowFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, cf)
	}
}

// HandleOptimalRate returns the recruitment pace suggested by the projection margin
// @Summary Optimal recruitment rate
// @Tags plan
// @Produce json
// @Success 200 {object} domain.Recommendation
// @Router /plan/recruitment/optimal [get]
func HandleOptimalRate(svc plan.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, svc.OptimalRate(r.Context()))
	}
}

// HandleGetRequalification returns the fixed-window requalification status of every tier
// @Summary Requalification status
// @Tags plan
// @Produce json
// @Success 200 {array} domain.RequalificationStatus
// @Router /plan/requalification [get]
func HandleGetRequalification(svc plan.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		eval := svc.Evaluate(r.Context())
		respondJSON(w, http.StatusOK, eval.Requalification[:])
	}
}

// HandleCheckRequalification runs one requalification poll immediately
// @Summary Check requalification
// @Description Posts a notice for every tier whose members must requalify
// @Tags plan
// @Produce json
// @Success 200 {object} RequalificationResponse
// @Router /plan/requalification/check [post]
func HandleCheckRequalification(svc plan.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		notices := svc.CheckRequalification(r.Context())

		levels := make([]int, 0, len(notices))
		for _, n := range notices {
			levels = append(levels, n.Level)
		}
		logger.FromContext(r.Context()).Info(LogMsgRequalChecked, "levels", levels)

		respondJSON(w, http.StatusOK, RequalificationResponse{
			Levels:  levels,
			Notices: notices,
		})
	}
}

// HandleGetWarning returns the current warning message
// @Summary Current warning
// @Description The most recent notice. Later notices replace earlier ones.
// @Tags plan
// @Produce json
// @Success 200 {object} WarningResponse
// @Router /plan/warning [get]
func HandleGetWarning(svc plan.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		n, ok := svc.Warning(r.Context())
		if !ok {
			respondJSON(w, http.StatusOK, WarningResponse{Message: ""})
			return
		}
		respondJSON(w, http.StatusOK, WarningResponse{Message: n.Message, Notice: &n})
	}
}
