// Package handler implements the HTTP handlers for the travel planner API.
// All handlers are methods on Server. Methods are split into feature files
// (plan.go, chat.go, export.go, health.go) but share the same Server struct
// so they can access its dependencies.
package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/oharris/trip-planner/internal/domain"
	"github.com/oharris/trip-planner/internal/export"
)

// PlannerService defines the generation operations the handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a stub without touching the provider clients.
//
// Every method returns (result, warning): an empty result with a non-empty
// warning means the generation failed and was degraded, never that the
// provider produced valid empty output.
type PlannerService interface {
	GenerateItinerary(ctx context.Context, p domain.Preferences) (string, string)
	Activities(ctx context.Context, p domain.Preferences, itinerary string) (string, string)
	Weather(ctx context.Context, p domain.Preferences) (string, string)
	PackingList(ctx context.Context, p domain.Preferences) (string, string)
	FoodCulture(ctx context.Context, p domain.Preferences) (string, string)
	UsefulLinks(ctx context.Context, p domain.Preferences) ([]domain.Link, string)
	Chat(ctx context.Context, p domain.Preferences, itinerary, question string) (string, string)
}

// SessionStore defines the session-state operations the handlers depend on.
// The store is the single reconciliation point: handlers never mutate a
// session value themselves.
type SessionStore interface {
	Create(prefs domain.Preferences) domain.TripSession
	Get(id uuid.UUID) (domain.TripSession, error)
	ReplacePreferences(id uuid.UUID, prefs domain.Preferences) error
	Delete(id uuid.UUID) error
	SetItinerary(id uuid.UUID, itinerary, warning string) error
	SetExtraText(id uuid.UUID, kind domain.ExtraKind, text, warning string) error
	SetLinks(id uuid.UUID, links []domain.Link, warning string) error
	AppendChat(id uuid.UUID, question, response, warning string) error
}

// Server implements all API endpoints.
type Server struct {
	planner  PlannerService
	sessions SessionStore

	// providerTimeout bounds each request's outbound generation/search calls.
	providerTimeout time.Duration

	// exportPDF is export.PDF unless a test substitutes it.
	exportPDF func(itinerary string) ([]byte, error)
}

// NewServer constructs the Server with all its dependencies.
func NewServer(planner PlannerService, sessions SessionStore, providerTimeout time.Duration) *Server {
	return &Server{
		planner:         planner,
		sessions:        sessions,
		providerTimeout: providerTimeout,
		exportPDF:       export.PDF,
	}
}

// Routes registers every endpoint on a fresh chi router.
// Middleware (request ID, logging, CORS, body limits) is wired in main.go
// around this router, not here.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", s.GetOpenAPI)

	r.Post("/plans", s.CreatePlan)
	r.Route("/plans/{id}", func(r chi.Router) {
		r.Get("/", s.GetPlan)
		r.Put("/", s.UpdatePlan)
		r.Delete("/", s.DeletePlan)
		r.Post("/activities", s.extraHandler(domain.ExtraActivities))
		r.Post("/weather", s.extraHandler(domain.ExtraWeather))
		r.Post("/packing", s.extraHandler(domain.ExtraPacking))
		r.Post("/food-culture", s.extraHandler(domain.ExtraFoodCulture))
		r.Post("/links", s.LinksExtra)
		r.Post("/chat", s.PostChat)
		r.Get("/export", s.ExportPlan)
	})

	return r
}

// providerContext derives the bounded context passed into every generation
// or search call.
func (s *Server) providerContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.providerTimeout)
}

// sessionID parses the {id} path parameter. A malformed UUID behaves like a
// missing session: the client is probing an ID that cannot exist.
func sessionID(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, "id"))
}

// writeJSON serializes v with the given status. Encoding failures are logged
// rather than surfaced: headers are already written at that point.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", "error", err)
	}
}
