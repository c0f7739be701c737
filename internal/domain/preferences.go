// Package domain contains the core data types for the travel planner API.
// This package has zero external dependencies beyond uuid and is imported by
// every other internal package (provider, cache, planner, session, handler).
package domain

// Preferences describes a single trip request as submitted by the user.
// It is treated as an immutable value object once submitted: generators key
// their caches on a fingerprint of these fields, so nothing may mutate a
// Preferences value after it enters a session.
type Preferences struct {
	Destination   string `json:"destination"`
	Month         string `json:"month"`
	Duration      int    `json:"duration"` // days, 1–30
	PartySize     string `json:"party_size"`
	HolidayType   string `json:"holiday_type"`
	BudgetType    string `json:"budget_type"`
	Accommodation string `json:"accommodation"`
	VisaStatus    string `json:"visa_status"`
	Comments      string `json:"comments,omitempty"`
}

// Months lists the twelve valid values for Preferences.Month.
var Months = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// PartySizes lists the valid values for Preferences.PartySize.
var PartySizes = []string{"1", "2", "3", "4-6", "7-10", "10+"}

// HolidayTypes lists the valid values for Preferences.HolidayType.
var HolidayTypes = []string{
	"Any", "Party", "Skiing", "Backpacking", "Family", "Beach",
	"Festival", "Adventure", "City Break", "Romantic", "Cruise",
}

// BudgetTypes lists the valid values for Preferences.BudgetType.
var BudgetTypes = []string{"Budget", "Mid-Range", "Luxury", "Backpacker", "Family"}

// Accommodations lists the valid values for Preferences.Accommodation.
var Accommodations = []string{"Hotel", "Resort", "Airbnb / Apartment", "No Preference"}

// VisaStatuses lists the valid values for Preferences.VisaStatus.
var VisaStatuses = []string{
	"No visa required", "Visa required", "Visa on arrival",
	"E-visa available", "I don't know / Not sure",
}

// MinDuration and MaxDuration bound Preferences.Duration, matching the
// 1–30 day range offered by the submission form.
const (
	MinDuration = 1
	MaxDuration = 30
)

// Normalized returns a copy of p with empty optional label fields replaced by
// their documented defaults. Month, Duration, and Destination are left as-is;
// validation of those is the planner's job.
//
// Normalization happens before fingerprinting, so an explicit "Mid-Range" and
// an omitted budget produce the same cache key.
func (p Preferences) Normalized() Preferences {
	if p.PartySize == "" {
		p.PartySize = "2"
	}
	if p.HolidayType == "" {
		p.HolidayType = "Any"
	}
	if p.BudgetType == "" {
		p.BudgetType = "Mid-Range"
	}
	if p.Accommodation == "" {
		p.Accommodation = "No Preference"
	}
	if p.VisaStatus == "" {
		p.VisaStatus = "I don't know / Not sure"
	}
	return p
}
