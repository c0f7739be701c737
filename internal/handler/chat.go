package handler

import (
	"encoding/json"
	"net/http"
	"strings"
)

// chatRequest is the body for POST /plans/{id}/chat.
type chatRequest struct {
	Question string `json:"question"`
}

// chatResponse is the reply: the answer plus a warning when the provider
// failed. Even on failure the question receives a transcript entry.
type chatResponse struct {
	Response string `json:"response"`
	Warning  string `json:"warning,omitempty"`
}

// chatFailureResponse is the sentinel transcript text recorded when the
// provider fails, so the user's question is never silently dropped.
const chatFailureResponse = "Sorry, I couldn't answer that right now. Please try again."

// PostChat handles POST /plans/{id}/chat.
// The responder injects only the preferences and itinerary into the prompt —
// the transcript is context for the UI, not replayed to the provider.
func (s *Server) PostChat(w http.ResponseWriter, r *http.Request) {
	id, err := sessionID(r)
	if err != nil {
		writeJSON(w, http.StatusNotFound, notFoundBody("plan not found"))
		return
	}

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody("request body must be a valid chat object"))
		return
	}
	req.Question = strings.TrimSpace(req.Question)
	if req.Question == "" {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody("question is required"))
		return
	}

	sess, err := s.sessions.Get(id)
	if err != nil {
		writeJSON(w, http.StatusNotFound, notFoundBody("plan not found"))
		return
	}

	ctx, cancel := s.providerContext(r.Context())
	defer cancel()
	response, warning := s.planner.Chat(ctx, sess.Preferences, sess.Itinerary, req.Question)

	// The transcript append is atomic inside the store. A provider failure
	// still produces a visible entry with the sentinel response.
	recorded := response
	if warning != "" {
		recorded = chatFailureResponse
	}
	if err := s.sessions.AppendChat(id, req.Question, recorded, warning); err != nil {
		writeJSON(w, http.StatusNotFound, notFoundBody("plan not found"))
		return
	}

	writeJSON(w, http.StatusOK, chatResponse{Response: recorded, Warning: warning})
}
