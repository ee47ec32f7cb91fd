package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/TierPlan_Go/internal/domain"
)

func TestRespondError_Body(t *testing.T) {
	w := httptest.NewRecorder()

	respondError(w, http.StatusBadRequest, ErrMsgInvalidLevelError)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"Tier level must be between 1 and 8"}`, w.Body.String())
}

func TestRespondServiceError_MemberLimit(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPut, "/plan/tiers", nil)

	respondServiceError(w, r, ErrMsgSetTableFailed, fmt.Errorf("%w: 5000000000 at tier 8", domain.ErrMemberLimit))

	require.Equal(t, http.StatusBadRequest, w.Code)
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, ErrMsgMemberLimitError, resp.Error)
}

func TestRespondJSON_UnencodablePayload(t *testing.T) {
	w := httptest.NewRecorder()

	respondJSON(w, http.StatusOK, map[string]interface{}{"bad": make(chan int)})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), ErrMsgGenericServerError)
}
