package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/oharris/trip-planner/internal/domain"
	"github.com/oharris/trip-planner/internal/planner"
)

// planResponse is the body returned by plan creation and re-submission.
// An empty itinerary with a non-empty warning means generation failed; the
// client must render a failure indicator, not an empty itinerary.
type planResponse struct {
	ID        uuid.UUID `json:"id"`
	Itinerary string    `json:"itinerary"`
	Warning   string    `json:"warning,omitempty"`
}

// extraResponse is the body returned by the text-valued extras endpoints.
type extraResponse struct {
	Kind    domain.ExtraKind `json:"kind"`
	Text    string           `json:"text"`
	Warning string           `json:"warning,omitempty"`
}

// linksResponse is the body returned by the links extra endpoint.
type linksResponse struct {
	Links   []domain.Link `json:"links"`
	Warning string        `json:"warning,omitempty"`
}

// decodePreferences reads and validates a preferences body, returning the
// normalized value. Normalization fills defaulted label fields before
// fingerprinting so equivalent submissions share cache entries.
func decodePreferences(r *http.Request) (domain.Preferences, error) {
	var prefs domain.Preferences
	if err := json.NewDecoder(r.Body).Decode(&prefs); err != nil {
		return domain.Preferences{}, errors.New("request body must be a valid preferences object")
	}
	if err := planner.Validate(prefs); err != nil {
		return domain.Preferences{}, err
	}
	return prefs.Normalized(), nil
}

// CreatePlan handles POST /plans.
// It seeds a new session from the submitted preferences and synchronously
// generates the itinerary through the cache.
func (s *Server) CreatePlan(w http.ResponseWriter, r *http.Request) {
	prefs, err := decodePreferences(r)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			writeJSON(w, http.StatusUnprocessableEntity, validationBody(err))
			return
		}
		writeJSON(w, http.StatusUnprocessableEntity, requestBody(err.Error()))
		return
	}

	sess := s.sessions.Create(prefs)

	ctx, cancel := s.providerContext(r.Context())
	defer cancel()
	itinerary, warning := s.planner.GenerateItinerary(ctx, prefs)

	if err := s.sessions.SetItinerary(sess.ID, itinerary, warning); err != nil {
		writeJSON(w, http.StatusNotFound, notFoundBody("plan not found"))
		return
	}

	writeJSON(w, http.StatusCreated, planResponse{ID: sess.ID, Itinerary: itinerary, Warning: warning})
}

// UpdatePlan handles PUT /plans/{id}.
// Re-submitting preferences resets the session — extras and chat are cleared,
// preferences and itinerary replaced — then regenerates the itinerary.
func (s *Server) UpdatePlan(w http.ResponseWriter, r *http.Request) {
	id, err := sessionID(r)
	if err != nil {
		writeJSON(w, http.StatusNotFound, notFoundBody("plan not found"))
		return
	}

	prefs, err := decodePreferences(r)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			writeJSON(w, http.StatusUnprocessableEntity, validationBody(err))
			return
		}
		writeJSON(w, http.StatusUnprocessableEntity, requestBody(err.Error()))
		return
	}

	if err := s.sessions.ReplacePreferences(id, prefs); err != nil {
		writeJSON(w, http.StatusNotFound, notFoundBody("plan not found"))
		return
	}

	ctx, cancel := s.providerContext(r.Context())
	defer cancel()
	itinerary, warning := s.planner.GenerateItinerary(ctx, prefs)

	if err := s.sessions.SetItinerary(id, itinerary, warning); err != nil {
		writeJSON(w, http.StatusNotFound, notFoundBody("plan not found"))
		return
	}

	writeJSON(w, http.StatusOK, planResponse{ID: id, Itinerary: itinerary, Warning: warning})
}

// GetPlan handles GET /plans/{id}: the full session state the UI renders from.
func (s *Server) GetPlan(w http.ResponseWriter, r *http.Request) {
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

	writeJSON(w, http.StatusOK, sess)
}

// DeletePlan handles DELETE /plans/{id}: the session ends and its state is
// discarded. Cached generations survive — they are keyed on preferences, not
// sessions.
func (s *Server) DeletePlan(w http.ResponseWriter, r *http.Request) {
	id, err := sessionID(r)
	if err != nil {
		writeJSON(w, http.StatusNotFound, notFoundBody("plan not found"))
		return
	}

	if err := s.sessions.Delete(id); err != nil {
		writeJSON(w, http.StatusNotFound, notFoundBody("plan not found"))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// extraHandler builds the POST /plans/{id}/{extra} handler for one of the
// text-valued extras. All four share a shape: look up the session, run the
// generator against the session's preferences (and itinerary, for
// activities), hand the outcome to the store, return it.
func (s *Server) extraHandler(kind domain.ExtraKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
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

		ctx, cancel := s.providerContext(r.Context())
		defer cancel()

		var text, warning string
		switch kind {
		case domain.ExtraActivities:
			text, warning = s.planner.Activities(ctx, sess.Preferences, sess.Itinerary)
		case domain.ExtraWeather:
			text, warning = s.planner.Weather(ctx, sess.Preferences)
		case domain.ExtraPacking:
			text, warning = s.planner.PackingList(ctx, sess.Preferences)
		case domain.ExtraFoodCulture:
			text, warning = s.planner.FoodCulture(ctx, sess.Preferences)
		}

		if err := s.sessions.SetExtraText(id, kind, text, warning); err != nil {
			writeJSON(w, http.StatusNotFound, notFoundBody("plan not found"))
			return
		}

		writeJSON(w, http.StatusOK, extraResponse{Kind: kind, Text: text, Warning: warning})
	}
}

// LinksExtra handles POST /plans/{id}/links: the search-backed extra.
func (s *Server) LinksExtra(w http.ResponseWriter, r *http.Request) {
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

	ctx, cancel := s.providerContext(r.Context())
	defer cancel()
	links, warning := s.planner.UsefulLinks(ctx, sess.Preferences)

	if err := s.sessions.SetLinks(id, links, warning); err != nil {
		writeJSON(w, http.StatusNotFound, notFoundBody("plan not found"))
		return
	}

	writeJSON(w, http.StatusOK, linksResponse{Links: links, Warning: warning})
}
