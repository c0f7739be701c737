// Package handler — export.go implements GET /plans/{id}/export.
// Streams the session's itinerary as a PDF download.
package handler

import (
	"net/http"
	"strconv"
)

// ExportPlan handles GET /plans/{id}/export.
// Returns 409 when the session has no itinerary yet, and an explicit
// export_error — with no partial bytes — when PDF generation fails.
func (s *Server) ExportPlan(w http.ResponseWriter, r *http.Request) {
	id, err := sessionID(r)
	if err != nil {
		writeJSON(w, http.StatusNotFound, notFoundBody("plan not found"))
		return
	}

	sess, err := s.sessions.Get(id)
	if err != nil {
		writeJSON(w, http.StatusNotFound, notFoundBody("plan not found"))
		return
	}
	if sess.Itinerary == "" {
		writeJSON(w, http.StatusConflict, conflictBody("no itinerary to export"))
		return
	}

	pdf, err := s.exportPDF(sess.Itinerary)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, exportBody("PDF generation failed"))
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="itinerary.pdf"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(pdf)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf)
}
