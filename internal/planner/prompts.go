package planner

import (
	"encoding/json"
	"fmt"

	"github.com/oharris/trip-planner/internal/domain"
)

// prefsJSON renders preferences as indented JSON for injection into prompts.
// The struct field order is fixed, so the rendering is deterministic.
func prefsJSON(p domain.Preferences) string {
	b, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Sprintf("%+v", p)
	}
	return string(b)
}

// itineraryPrompt instructs the model to produce a day-by-day plan with
// dining and downtime sections. The response is used verbatim — no structure
// is parsed or validated.
func itineraryPrompt(p domain.Preferences) string {
	return fmt.Sprintf(`Using the following preferences, create a detailed itinerary:
%s

Include sections for each day, dining options, and downtime.`, prefsJSON(p))
}

// activitiesPrompt asks for unique local activities grounded in both the
// preferences and the already-generated itinerary.
func activitiesPrompt(p domain.Preferences, itinerary string) string {
	return fmt.Sprintf(`Based on the following preferences and itinerary, suggest unique local activities:
Preferences: %s
Itinerary: %s

Provide suggestions in bullet points for each day if possible.`, prefsJSON(p), itinerary)
}

// weatherPrompt asks for a forecast with temperature, precipitation, and
// traveller advice for the destination and month.
func weatherPrompt(p domain.Preferences) string {
	return fmt.Sprintf(`Based on the destination and month, provide a detailed weather forecast including temperature, precipitation, and advice for travelers:
Destination: %s
Month: %s`, p.Destination, p.Month)
}

// packingPrompt asks for a packing list sized to the trip type, destination,
// month, and duration.
func packingPrompt(p domain.Preferences) string {
	holiday := p.HolidayType
	if holiday == "" || holiday == "Any" {
		holiday = "general"
	}
	return fmt.Sprintf(`Generate a comprehensive packing list for a %s holiday in %s during %s for %d days.
Include essentials based on expected weather and trip type.`, holiday, p.Destination, p.Month, p.Duration)
}

// foodCulturePrompt asks for dining suggestions and cultural etiquette in a
// documented two-section format.
func foodCulturePrompt(p domain.Preferences) string {
	budget := p.BudgetType
	if budget == "" {
		budget = "Mid-Range"
	}
	return fmt.Sprintf(`For a trip to %s with a %s budget:
1. Suggest popular local dishes and recommended dining options.
2. Provide important cultural norms, etiquette tips, and things travelers should be aware of.
Format the response with clear sections for 'Food & Dining' and 'Culture & Etiquette'.`, p.Destination, budget)
}

// chatPrompt injects the trip context and the user's question, and asks for a
// brief conversational reply wrapped in a chat_response JSON envelope. The
// envelope is best-effort: the responder falls back to the raw text when the
// model ignores the format.
func chatPrompt(p domain.Preferences, itinerary, question string) string {
	return fmt.Sprintf(`Context:
Preferences: %s
Itinerary: %s

User Question:
%s

Respond conversationally with insights or suggestions : keep your response brief
{ "chat_response": "Your response here" }`, prefsJSON(p), itinerary, question)
}

// linksQuery is the web search query used for the Useful Links extra.
func linksQuery(p domain.Preferences) string {
	return fmt.Sprintf("Travel tips and guides for %s in %s", p.Destination, p.Month)
}
