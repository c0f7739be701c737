package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strconv"
)

// Fingerprint returns a deterministic cache key for a set of preferences.
//
// The preferences are serialized through a map so that encoding/json emits
// keys in sorted order — two Preferences values with identical fields always
// produce identical bytes regardless of how they were constructed. The key is
// the SHA-256 of that canonical serialization, hex-encoded.
//
// Fingerprints are cache keys only; they are never persisted across restarts.
func Fingerprint(p Preferences) string {
	return fingerprint(canonicalFields(p))
}

// FingerprintWith returns a cache key covering both the preferences and the
// itinerary text. Used by generators whose output depends on the itinerary
// (activities): the same preferences with a different itinerary must not
// reuse a stale result.
func FingerprintWith(p Preferences, itinerary string) string {
	fields := canonicalFields(p)
	fields["itinerary"] = itinerary
	return fingerprint(fields)
}

// canonicalFields flattens preferences into a map so json.Marshal sorts keys.
// Duration is stringified to keep every value a plain string.
func canonicalFields(p Preferences) map[string]string {
	return map[string]string{
		"destination":   p.Destination,
		"month":         p.Month,
		"duration":      strconv.Itoa(p.Duration),
		"party_size":    p.PartySize,
		"holiday_type":  p.HolidayType,
		"budget_type":   p.BudgetType,
		"accommodation": p.Accommodation,
		"visa_status":   p.VisaStatus,
		"comments":      p.Comments,
	}
}

func fingerprint(fields map[string]string) string {
	// json.Marshal on a map emits keys in sorted order, which is exactly the
	// canonical key-ordered serialization the fingerprint contract requires.
	b, err := json.Marshal(fields)
	if err != nil {
		// A map[string]string cannot fail to marshal; keep the signature clean.
		panic("domain.Fingerprint: marshal: " + err.Error())
	}
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}
