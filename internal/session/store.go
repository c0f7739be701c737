// Package session holds the in-memory state for active planning sessions.
//
// The store is the single reconciliation point for session mutation: handlers
// never modify a TripSession directly, they hand results to the store, which
// merges them under its lock. Sessions live only for the process lifetime —
// there is deliberately no persistence.
package session

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/oharris/trip-planner/internal/domain"
)

// Store is a concurrency-safe map of session ID to TripSession.
type Store struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*domain.TripSession
	now      func() time.Time
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{
		sessions: make(map[uuid.UUID]*domain.TripSession),
		now:      time.Now,
	}
}

// Create seeds a new session with the given preferences and returns a copy.
// All generated fields start empty.
func (s *Store) Create(prefs domain.Preferences) domain.TripSession {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now().UTC()
	sess := &domain.TripSession{
		ID:          uuid.New(),
		Preferences: prefs,
		Chat:        []domain.ChatEntry{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.sessions[sess.ID] = sess
	return *sess
}

// Get returns a copy of the session with the given ID.
// Returns domain.ErrNotFound if no such session exists.
func (s *Store) Get(id uuid.UUID) (domain.TripSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[id]
	if !ok {
		return domain.TripSession{}, fmt.Errorf("session.Store.Get: %w", domain.ErrNotFound)
	}
	return copySession(sess), nil
}

// ReplacePreferences swaps in new preferences for an existing session and
// clears everything derived from the old ones: itinerary, all extras, chat
// transcript, and warning. This is the reset that accompanies each new
// itinerary submission.
func (s *Store) ReplacePreferences(id uuid.UUID, prefs domain.Preferences) error {
	return s.update(id, func(sess *domain.TripSession) {
		sess.Preferences = prefs
		sess.Itinerary = ""
		sess.Activities = ""
		sess.Weather = ""
		sess.PackingList = ""
		sess.FoodCulture = ""
		sess.Links = nil
		sess.Chat = []domain.ChatEntry{}
		sess.Warning = ""
	})
}

// SetItinerary records the itinerary generation outcome.
// An empty itinerary with a non-empty warning means generation failed.
func (s *Store) SetItinerary(id uuid.UUID, itinerary, warning string) error {
	return s.update(id, func(sess *domain.TripSession) {
		sess.Itinerary = itinerary
		sess.Warning = warning
	})
}

// SetExtraText records the outcome of a text-valued extra generator.
// A failed generation (empty text, non-empty warning) leaves the previous
// value untouched so an earlier success is not wiped by a later failure.
func (s *Store) SetExtraText(id uuid.UUID, kind domain.ExtraKind, text, warning string) error {
	return s.update(id, func(sess *domain.TripSession) {
		sess.Warning = warning
		if text == "" {
			return
		}
		switch kind {
		case domain.ExtraActivities:
			sess.Activities = text
		case domain.ExtraWeather:
			sess.Weather = text
		case domain.ExtraPacking:
			sess.PackingList = text
		case domain.ExtraFoodCulture:
			sess.FoodCulture = text
		}
	})
}

// SetLinks records the outcome of the Useful Links generator.
func (s *Store) SetLinks(id uuid.UUID, links []domain.Link, warning string) error {
	return s.update(id, func(sess *domain.TripSession) {
		sess.Warning = warning
		if len(links) > 0 {
			sess.Links = append([]domain.Link(nil), links...)
		}
	})
}

// AppendChat atomically appends one question/response pair to the transcript.
// The caller must always supply a response — on provider failure that is the
// visible sentinel text, so a question is never left dangling.
func (s *Store) AppendChat(id uuid.UUID, question, response, warning string) error {
	return s.update(id, func(sess *domain.TripSession) {
		sess.Chat = append(sess.Chat, domain.ChatEntry{Question: question, Response: response})
		sess.Warning = warning
	})
}

// Delete removes a session. Returns domain.ErrNotFound if it does not exist.
func (s *Store) Delete(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return fmt.Errorf("session.Store.Delete: %w", domain.ErrNotFound)
	}
	delete(s.sessions, id)
	return nil
}

// update applies fn to the named session under the write lock and bumps
// UpdatedAt. All mutation funnels through here.
func (s *Store) update(id uuid.UUID, fn func(*domain.TripSession)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return fmt.Errorf("session.Store: %w", domain.ErrNotFound)
	}
	fn(sess)
	sess.UpdatedAt = s.now().UTC()
	return nil
}

// copySession returns a deep enough copy that callers can hold it without a
// lock: the slices are cloned, everything else is value-copied.
func copySession(sess *domain.TripSession) domain.TripSession {
	out := *sess
	out.Chat = append([]domain.ChatEntry(nil), sess.Chat...)
	if sess.Links != nil {
		out.Links = append([]domain.Link(nil), sess.Links...)
	}
	return out
}
