package domain

import (
	"time"

	"github.com/google/uuid"
)

// Link is a single web search result offered under "Useful Links".
// Title defaults to "No title" and URL to "" when the search provider omits
// the corresponding field.
type Link struct {
	Title string `json:"title"`
	URL   string `json:"link"`
}

// ChatEntry is one question/response pair in a session's chat transcript.
// The transcript is append-only; insertion order is display order.
type ChatEntry struct {
	Question string `json:"question"`
	Response string `json:"response"`
}

// ExtraKind identifies one of the optional enrichments that can be generated
// on top of a base itinerary.
type ExtraKind string

const (
	ExtraActivities  ExtraKind = "activities"
	ExtraWeather     ExtraKind = "weather"
	ExtraPacking     ExtraKind = "packing"
	ExtraFoodCulture ExtraKind = "food_culture"
	ExtraLinks       ExtraKind = "links"
)

// TripSession is the mutable aggregate for one planning session: the
// submitted preferences, the generated itinerary, every extra generated so
// far, and the chat transcript. It is the single source of truth a client
// renders from.
//
// All extra fields are empty until their generator runs. Warning holds the
// most recent operation's degradation message and is overwritten by the next
// operation. Sessions live only in process memory.
type TripSession struct {
	ID          uuid.UUID   `json:"id"`
	Preferences Preferences `json:"preferences"`
	Itinerary   string      `json:"itinerary,omitempty"`
	Activities  string      `json:"activity_suggestions,omitempty"`
	Weather     string      `json:"weather_forecast,omitempty"`
	PackingList string      `json:"packing_list,omitempty"`
	FoodCulture string      `json:"food_culture_info,omitempty"`
	Links       []Link      `json:"useful_links,omitempty"`
	Chat        []ChatEntry `json:"chat_history"`
	Warning     string      `json:"warning,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}
