// Package planner contains the business logic for the travel planner API:
// the itinerary generator, the five extras generators, and the chat
// responder. Every provider call goes through the memo cache, and every
// provider failure is converted here into an empty result plus a warning —
// it never propagates past this package as an error.
package planner

import (
	"context"
	"fmt"
	"strings"

	"github.com/oharris/trip-planner/internal/cache"
	"github.com/oharris/trip-planner/internal/domain"
)

// TextGenerator is the text-generation capability the planner depends on.
// Declaring the interface here (in the consumer package) lets tests inject a
// deterministic stub without touching the real provider client.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// WebSearcher is the web-search capability used by the Useful Links extra.
type WebSearcher interface {
	SearchWeb(ctx context.Context, query string) ([]domain.Link, error)
}

// maxLinks caps the Useful Links extra at the first N organic results.
const maxLinks = 5

// Planner orchestrates the generators. Text results and link lists are
// memoized separately because they have different value types; both caches
// are shared across sessions since every key is a fingerprint of pure inputs.
type Planner struct {
	llm    TextGenerator
	search WebSearcher
	texts  *cache.Memo[string]
	links  *cache.Memo[[]domain.Link]
}

// New constructs a Planner backed by the provided capabilities.
func New(llm TextGenerator, search WebSearcher) *Planner {
	return &Planner{
		llm:    llm,
		search: search,
		texts:  cache.NewMemo[string](),
		links:  cache.NewMemo[[]domain.Link](),
	}
}

// Validate checks submitted preferences against the allowed value sets.
// Destination is expected non-empty but deliberately not enforced.
// Returns a wrapped domain.ErrValidation describing the first violation.
func Validate(p domain.Preferences) error {
	if !contains(domain.Months, p.Month) {
		return fmt.Errorf("%w: month must be one of the twelve English month names", domain.ErrValidation)
	}
	if p.Duration < domain.MinDuration || p.Duration > domain.MaxDuration {
		return fmt.Errorf("%w: duration must be between %d and %d days", domain.ErrValidation, domain.MinDuration, domain.MaxDuration)
	}
	for _, f := range []struct {
		name    string
		value   string
		allowed []string
	}{
		{"party_size", p.PartySize, domain.PartySizes},
		{"holiday_type", p.HolidayType, domain.HolidayTypes},
		{"budget_type", p.BudgetType, domain.BudgetTypes},
		{"accommodation", p.Accommodation, domain.Accommodations},
		{"visa_status", p.VisaStatus, domain.VisaStatuses},
	} {
		// Empty is allowed; Normalized fills in the documented default.
		if f.value != "" && !contains(f.allowed, f.value) {
			return fmt.Errorf("%w: %s has an unknown value %q", domain.ErrValidation, f.name, f.value)
		}
	}
	return nil
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

// GenerateItinerary produces the day-by-day itinerary for the given
// preferences. Returns the itinerary text and a warning; an empty itinerary
// with a non-empty warning means generation failed, never "empty but valid".
func (pl *Planner) GenerateItinerary(ctx context.Context, p domain.Preferences) (string, string) {
	return pl.cachedText(ctx, "itinerary:"+domain.Fingerprint(p), itineraryPrompt(p))
}

// Activities suggests local activities grounded in preferences and the
// generated itinerary. Keyed on both, so the same preferences with a
// different itinerary never reuse a stale activity list.
func (pl *Planner) Activities(ctx context.Context, p domain.Preferences, itinerary string) (string, string) {
	return pl.cachedText(ctx, "activities:"+domain.FingerprintWith(p, itinerary), activitiesPrompt(p, itinerary))
}

// Weather produces a month-level forecast for the destination.
func (pl *Planner) Weather(ctx context.Context, p domain.Preferences) (string, string) {
	return pl.cachedText(ctx, "weather:"+domain.Fingerprint(p), weatherPrompt(p))
}

// PackingList produces a packing list for the trip.
func (pl *Planner) PackingList(ctx context.Context, p domain.Preferences) (string, string) {
	return pl.cachedText(ctx, "packing:"+domain.Fingerprint(p), packingPrompt(p))
}

// FoodCulture produces dining and etiquette notes in a two-section format.
func (pl *Planner) FoodCulture(ctx context.Context, p domain.Preferences) (string, string) {
	return pl.cachedText(ctx, "food_culture:"+domain.Fingerprint(p), foodCulturePrompt(p))
}

// UsefulLinks fetches travel guides for the destination and month, truncated
// to the first five organic results. On failure it returns an empty list and
// a warning, mirroring the text generators' degradation.
func (pl *Planner) UsefulLinks(ctx context.Context, p domain.Preferences) ([]domain.Link, string) {
	links, err := pl.links.Do("links:"+domain.Fingerprint(p), func() ([]domain.Link, error) {
		results, err := pl.search.SearchWeb(ctx, linksQuery(p))
		if err != nil {
			return nil, err
		}
		if len(results) > maxLinks {
			results = results[:maxLinks]
		}
		return results, nil
	})
	if err != nil {
		return []domain.Link{}, fmt.Sprintf("Failed to fetch links: %s", err)
	}
	return links, ""
}

// Chat answers an ad hoc question about the trip. Only the preferences and
// itinerary are injected into the prompt; the transcript is not replayed to
// the provider. Responses are intentionally not cached.
//
// The provider is asked to wrap its reply in a {"chat_response": ...}
// envelope, but that is best-effort: when the raw text is not a valid
// envelope the trimmed text itself is the response.
func (pl *Planner) Chat(ctx context.Context, p domain.Preferences, itinerary, question string) (string, string) {
	raw, err := pl.llm.GenerateText(ctx, chatPrompt(p, itinerary, question))
	if err != nil {
		return "", err.Error()
	}
	response, _ := parseChatResponse(raw)
	return response, ""
}

// cachedText memoizes a single text generation under the given key.
// Failures are converted into ("", warning); successes are trimmed before
// caching so replays are byte-identical.
func (pl *Planner) cachedText(ctx context.Context, key, prompt string) (string, string) {
	text, err := pl.texts.Do(key, func() (string, error) {
		result, err := pl.llm.GenerateText(ctx, prompt)
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(result), nil
	})
	if err != nil {
		return "", err.Error()
	}
	return text, ""
}
