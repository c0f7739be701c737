package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oharris/trip-planner/internal/domain"
	"github.com/oharris/trip-planner/internal/session"
)

// TestExportPlan_500_generationFailure substitutes the PDF renderer to verify
// the failure path: an error body with no partial PDF bytes.
func TestExportPlan_500_generationFailure(t *testing.T) {
	store := session.NewStore()
	sess := store.Create(domain.Preferences{Destination: "Lisbon", Month: "May", Duration: 5}.Normalized())
	require.NoError(t, store.SetItinerary(sess.ID, "Day 1: Alfama", ""))

	srv := NewServer(nil, store, time.Second)
	srv.exportPDF = func(string) ([]byte, error) {
		return nil, errors.New("render failed")
	}

	req := httptest.NewRequest(http.MethodGet, "/plans/"+sess.ID.String()+"/export", nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", sess.ID.String())
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

	rec := httptest.NewRecorder()
	srv.ExportPlan(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "export_error", resp.Error.Code)
	assert.Equal(t, "PDF generation failed", resp.Error.Message)
}
