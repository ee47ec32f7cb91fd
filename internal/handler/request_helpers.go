package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/TierPlan_Go/internal/logger"
)

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// DecodeAndValidateRequest decodes a JSON request body and validates it.
// If it returns an error the response has already been written and the
// handler should return.
//
//	var req SetTableRequest
//	if err := DecodeAndValidateRequest(r, w, &req, "Set table"); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		log.Warn(LogMsgDecodeFailed, "action", actionName, "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	log.Debug(LogMsgRequestDecoded, "action", actionName)

	if err := GetValidator().ValidateStruct(req); err != nil {
		log.Warn(LogMsgValidationFailed, "action", actionName, "error", err)
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}

	return nil
}

// GetLevelParam parses the {level} URL parameter and checks it names a tier.
// If ok is false the response has already been written.
func GetLevelParam(r *http.Request, w http.ResponseWriter) (int, bool) {
	raw := chi.URLParam(r, URLParamLevel)
	level, err := strconv.Atoi(raw)
	if err == nil {
		err = GetValidator().ValidateVar(level, TagTierLevel)
	}
	if err != nil {
		logger.FromContext(r.Context()).Warn(LogMsgInvalidParam, "param", URLParamLevel, "value", raw)
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidLevelParam, raw))
		return 0, false
	}
	return level, true
}

// GetDaysParam parses the optional days query parameter, defaulting to
// DefaultDays. If ok is false the response has already been written.
func GetDaysParam(r *http.Request, w http.ResponseWriter) (int, bool) {
	raw := GetOptionalQueryParam(r, QueryParamDays, "")
	if raw == "" {
		return DefaultDays, true
	}
	days, err := strconv.Atoi(raw)
	if err == nil {
		err = GetValidator().ValidateVar(days, TagHorizon)
	}
	if err != nil {
		logger.FromContext(r.Context()).Warn(LogMsgInvalidParam, "param", QueryParamDays, "value", raw)
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidDaysParam, raw))
		return 0, false
	}
	return days, true
}

// GetOptionalQueryParam returns the named query parameter or defaultValue
// when it is missing.
func GetOptionalQueryParam(r *http.Request, paramName string, defaultValue string) string {
	value := r.URL.Query().Get(paramName)
	if value == "" {
		return defaultValue
	}
	return value
}

// LogRequestFields logs alternating key/value request details at debug level
func LogRequestFields(log *slog.Logger, keyvals ...interface{}) {
	if len(keyvals)%2 != 0 {
		log.Warn(LogMsgOddLogFields)
		return
	}
	log.Debug(LogMsgRequestDetails, keyvals...)
}
