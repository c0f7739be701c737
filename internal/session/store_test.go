package session_test

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oharris/trip-planner/internal/domain"
	"github.com/oharris/trip-planner/internal/session"
)

func prefsFixture() domain.Preferences {
	return domain.Preferences{
		Destination: "Lisbon",
		Month:       "May",
		Duration:    5,
		PartySize:   "2",
		BudgetType:  "Mid-Range",
	}
}

// TestStore_CreateAndGet verifies that a new session starts with empty
// generated fields and a non-nil, empty transcript.
func TestStore_CreateAndGet(t *testing.T) {
	store := session.NewStore()

	created := store.Create(prefsFixture())
	require.NotEqual(t, uuid.Nil, created.ID)

	got, err := store.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, prefsFixture(), got.Preferences)
	assert.Empty(t, got.Itinerary)
	assert.Empty(t, got.Activities)
	assert.NotNil(t, got.Chat)
	assert.Empty(t, got.Chat)
}

// TestStore_GetUnknownID verifies the not-found contract.
func TestStore_GetUnknownID(t *testing.T) {
	store := session.NewStore()

	_, err := store.Get(uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// TestStore_SetItinerary records both the success and the failure shape.
func TestStore_SetItinerary(t *testing.T) {
	store := session.NewStore()
	sess := store.Create(prefsFixture())

	require.NoError(t, store.SetItinerary(sess.ID, "Day 1: Alfama", ""))
	got, err := store.Get(sess.ID)
	require.NoError(t, err)
	assert.Equal(t, "Day 1: Alfama", got.Itinerary)
	assert.Empty(t, got.Warning)

	// A failed generation stores the empty itinerary with its warning.
	require.NoError(t, store.SetItinerary(sess.ID, "", "provider error: quota"))
	got, err = store.Get(sess.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Itinerary)
	assert.Equal(t, "provider error: quota", got.Warning)
}

// TestStore_ReplacePreferences_resetsDerivedState verifies the submission
// reset: extras and chat are cleared, preferences replaced.
func TestStore_ReplacePreferences_resetsDerivedState(t *testing.T) {
	store := session.NewStore()
	sess := store.Create(prefsFixture())

	require.NoError(t, store.SetItinerary(sess.ID, "Day 1", ""))
	require.NoError(t, store.SetExtraText(sess.ID, domain.ExtraWeather, "Sunny", ""))
	require.NoError(t, store.SetLinks(sess.ID, []domain.Link{{Title: "Guide", URL: "https://example.com"}}, ""))
	require.NoError(t, store.AppendChat(sess.ID, "Q", "A", ""))

	newPrefs := prefsFixture()
	newPrefs.Destination = "Porto"
	require.NoError(t, store.ReplacePreferences(sess.ID, newPrefs))

	got, err := store.Get(sess.ID)
	require.NoError(t, err)
	assert.Equal(t, "Porto", got.Preferences.Destination)
	assert.Empty(t, got.Itinerary)
	assert.Empty(t, got.Weather)
	assert.Empty(t, got.Links)
	assert.Empty(t, got.Chat)
	assert.Empty(t, got.Warning)
}

// TestStore_SetExtraText_failureKeepsPreviousValue verifies that a failed
// regeneration does not wipe an earlier success.
func TestStore_SetExtraText_failureKeepsPreviousValue(t *testing.T) {
	store := session.NewStore()
	sess := store.Create(prefsFixture())

	require.NoError(t, store.SetExtraText(sess.ID, domain.ExtraPacking, "Sunscreen, hat", ""))
	require.NoError(t, store.SetExtraText(sess.ID, domain.ExtraPacking, "", "provider error"))

	got, err := store.Get(sess.ID)
	require.NoError(t, err)
	assert.Equal(t, "Sunscreen, hat", got.PackingList)
	assert.Equal(t, "provider error", got.Warning)
}

// TestStore_SetExtraText_routesEveryKind verifies each text extra lands in
// its own field.
func TestStore_SetExtraText_routesEveryKind(t *testing.T) {
	store := session.NewStore()
	sess := store.Create(prefsFixture())

	require.NoError(t, store.SetExtraText(sess.ID, domain.ExtraActivities, "a", ""))
	require.NoError(t, store.SetExtraText(sess.ID, domain.ExtraWeather, "w", ""))
	require.NoError(t, store.SetExtraText(sess.ID, domain.ExtraPacking, "p", ""))
	require.NoError(t, store.SetExtraText(sess.ID, domain.ExtraFoodCulture, "f", ""))

	got, err := store.Get(sess.ID)
	require.NoError(t, err)
	assert.Equal(t, "a", got.Activities)
	assert.Equal(t, "w", got.Weather)
	assert.Equal(t, "p", got.PackingList)
	assert.Equal(t, "f", got.FoodCulture)
}

// TestStore_AppendChat_appendOnlyInOrder verifies that after K interactions
// the transcript has exactly K entries in submission order.
func TestStore_AppendChat_appendOnlyInOrder(t *testing.T) {
	store := session.NewStore()
	sess := store.Create(prefsFixture())

	const k = 7
	for i := 0; i < k; i++ {
		require.NoError(t, store.AppendChat(sess.ID, fmt.Sprintf("q%d", i), fmt.Sprintf("r%d", i), ""))
	}

	got, err := store.Get(sess.ID)
	require.NoError(t, err)
	require.Len(t, got.Chat, k)
	for i, entry := range got.Chat {
		assert.Equal(t, fmt.Sprintf("q%d", i), entry.Question)
		assert.Equal(t, fmt.Sprintf("r%d", i), entry.Response)
	}
}

// TestStore_GetReturnsCopy verifies that mutating a returned session does not
// leak back into the store.
func TestStore_GetReturnsCopy(t *testing.T) {
	store := session.NewStore()
	sess := store.Create(prefsFixture())
	require.NoError(t, store.AppendChat(sess.ID, "q", "r", ""))

	got, err := store.Get(sess.ID)
	require.NoError(t, err)
	got.Chat[0].Response = "tampered"
	got.Itinerary = "tampered"

	fresh, err := store.Get(sess.ID)
	require.NoError(t, err)
	assert.Equal(t, "r", fresh.Chat[0].Response)
	assert.Empty(t, fresh.Itinerary)
}

// TestStore_Delete verifies removal and the double-delete error.
func TestStore_Delete(t *testing.T) {
	store := session.NewStore()
	sess := store.Create(prefsFixture())

	require.NoError(t, store.Delete(sess.ID))
	assert.ErrorIs(t, store.Delete(sess.ID), domain.ErrNotFound)
	_, err := store.Get(sess.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
