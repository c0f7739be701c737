package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oharris/trip-planner/internal/domain"
	"github.com/oharris/trip-planner/internal/handler"
)

func TestExportPlan_200_streamsPDF(t *testing.T) {
	h, _ := newTestServer(&mockPlanner{})
	id := createPlan(t, h)

	rec := doRequest(t, h, http.MethodGet, "/plans/"+id.String()+"/export", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="itinerary.pdf"`, rec.Header().Get("Content-Disposition"))

	body := rec.Body.Bytes()
	require.NotEmpty(t, body)
	assert.Equal(t, "%PDF-", string(body[:5]))
}

func TestExportPlan_409_noItinerary(t *testing.T) {
	// Generation failed at creation time, so the session has no itinerary.
	pl := &mockPlanner{generateItinerary: func(_ context.Context, _ domain.Preferences) (string, string) {
		return "", "provider error: timeout"
	}}
	h, _ := newTestServer(pl)
	id := createPlan(t, h)

	rec := doRequest(t, h, http.MethodGet, "/plans/"+id.String()+"/export", nil)

	require.Equal(t, http.StatusConflict, rec.Code)
	var resp handler.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "conflict", resp.Error.Code)
	assert.Equal(t, "no itinerary to export", resp.Error.Message)
}

func TestExportPlan_404_unknownSession(t *testing.T) {
	h, _ := newTestServer(&mockPlanner{})

	rec := doRequest(t, h, http.MethodGet, "/plans/"+uuid.NewString()+"/export", nil)

	require.Equal(t, http.StatusNotFound, rec.Code)
	var resp handler.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "not_found", resp.Error.Code)
}
