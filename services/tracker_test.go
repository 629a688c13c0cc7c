package services

import (
	"testing"

	"github.com/Trupti-Varma/SAVEBITE/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore is an in-memory RecordStore that records every save, in
// order, so tests can assert on commit behavior.
type fakeStore struct {
	records map[uint]models.UserRecord
	saves   []uint
}

func newFakeStore() *fakeStore {
	return &fakeStore{records: make(map[uint]models.UserRecord)}
}

func (f *fakeStore) Load(userID uint, email string) (LoadResult, error) {
	record, ok := f.records[userID]
	if !ok {
		return LoadResult{Outcome: seedOutcome(email)}, nil
	}
	return LoadResult{Outcome: RecordFound, Record: record}, nil
}

func (f *fakeStore) Save(userID uint, record models.UserRecord) error {
	f.records[userID] = record
	f.saves = append(f.saves, userID)
	return nil
}

func newTestTracker() (*TrackerService, *fakeStore) {
	store := newFakeStore()
	return NewTrackerService(store, SubstringMatcher{}, nil), store
}

func TestBeginSeedsDemoAccount(t *testing.T) {
	tracker, store := newTestTracker()

	record, err := tracker.Begin(1, DemoEmail)
	require.NoError(t, err)

	assert.Len(t, record.Inventory, 6)
	assert.Equal(t, 145, record.Stats.MealsSaved)
	assert.Equal(t, 8, record.Stats.Level)
	assert.Len(t, record.Stats.History, 2)

	// Seed is committed right away so it can never re-trigger.
	require.Contains(t, store.records, uint(1))
}

func TestBeginSeedsEmptyForNewUser(t *testing.T) {
	tracker, store := newTestTracker()

	record, err := tracker.Begin(2, "alice@example.com")
	require.NoError(t, err)

	assert.Empty(t, record.Inventory)
	assert.Equal(t, 1, record.Stats.Level)
	assert.Equal(t, 0, record.Stats.XP)
	require.Contains(t, store.records, uint(2))
}

func TestSeedDecisionRunsOnlyOnce(t *testing.T) {
	tracker, _ := newTestTracker()

	_, err := tracker.Begin(1, DemoEmail)
	require.NoError(t, err)

	// Eat through the demo inventory, then log out and back in.
	_, err = tracker.DeleteItem(1, "m1")
	require.NoError(t, err)
	tracker.End(1)

	record, err := tracker.Begin(1, DemoEmail)
	require.NoError(t, err)
	assert.Len(t, record.Inventory, 5, "second login must load the record, not re-seed")
}

func TestMutationBeforeBeginIsRejected(t *testing.T) {
	tracker, store := newTestTracker()

	_, err := tracker.AddItem(7, models.FoodItem{ID: "x", Name: "Bread"})
	assert.ErrorIs(t, err, ErrNoSession)
	assert.Empty(t, store.saves, "nothing may be written before the first load")
}

func TestLogoutResetsSessionState(t *testing.T) {
	tracker, _ := newTestTracker()

	_, err := tracker.Begin(1, DemoEmail)
	require.NoError(t, err)
	tracker.End(1)

	_, err = tracker.Snapshot(1)
	assert.ErrorIs(t, err, ErrNoSession)

	// A different user logging in next sees only their own state.
	record, err := tracker.Begin(2, "bob@example.com")
	require.NoError(t, err)
	assert.Empty(t, record.Inventory)
	assert.Equal(t, 0, record.Stats.MealsSaved)
}

func TestMarkDonatedCreditsLedgerAndCommits(t *testing.T) {
	tracker, store := newTestTracker()

	_, err := tracker.Begin(3, "carol@example.com")
	require.NoError(t, err)

	_, err = tracker.AddItem(3, models.FoodItem{ID: "i1", Name: "Rice Bag", Status: models.StatusActive})
	require.NoError(t, err)

	record, err := tracker.UpdateStatus(3, "i1", models.StatusDonated)
	require.NoError(t, err)

	assert.Equal(t, models.StatusDonated, record.Inventory[0].Status)
	assert.Equal(t, 1, record.Stats.MealsSaved)
	assert.Equal(t, 1, record.Stats.DonationsCompleted)
	assert.Equal(t, 0.5, record.Stats.CO2Saved)
	assert.Equal(t, 50, record.Stats.XP)

	assert.Equal(t, record, store.records[3], "every mutation commits the combined result")
}

func TestMarkWastedDoesNotTouchStats(t *testing.T) {
	tracker, _ := newTestTracker()

	_, err := tracker.Begin(3, "carol@example.com")
	require.NoError(t, err)
	_, err = tracker.AddItem(3, models.FoodItem{ID: "i1", Name: "Old Bread", Status: models.StatusActive})
	require.NoError(t, err)

	record, err := tracker.UpdateStatus(3, "i1", models.StatusWasted)
	require.NoError(t, err)

	assert.Equal(t, models.StatusWasted, record.Inventory[0].Status)
	assert.Equal(t, 0, record.Stats.XP)
	assert.Equal(t, 0, record.Stats.MealsSaved)
}

func TestCompleteDonationBatchThroughTracker(t *testing.T) {
	tracker, store := newTestTracker()

	_, err := tracker.Begin(4, "dan@example.com")
	require.NoError(t, err)

	for _, it := range []models.FoodItem{
		{ID: "a", Name: "Bread Loaf", Status: models.StatusActive},
		{ID: "b", Name: "Apple Crate", Status: models.StatusActive},
		{ID: "c", Name: "Milk Carton", Status: models.StatusActive},
	} {
		_, err = tracker.AddItem(4, it)
		require.NoError(t, err)
	}

	record, err := tracker.CompleteDonation(4, []string{"a", "b", "c"}, 12, "Helping Hands Shelter")
	require.NoError(t, err)

	assert.Equal(t, 3, record.Stats.MealsSaved)
	assert.Equal(t, 1, record.Stats.DonationsCompleted)
	assert.Equal(t, 1.5, record.Stats.CO2Saved)
	assert.Equal(t, 12.0, record.Stats.MoneySaved)
	assert.Equal(t, 150, record.Stats.XP)

	for _, it := range record.Inventory {
		assert.Equal(t, models.StatusDonated, it.Status)
	}

	require.Len(t, record.Stats.History, 1)
	assert.Equal(t, "Helping Hands Shelter", record.Stats.History[0].NGOName)
	assert.Equal(t, record, store.records[4])
}

func TestCookConsumesMatchedItemsOnly(t *testing.T) {
	tracker, _ := newTestTracker()

	_, err := tracker.Begin(5, "erin@example.com")
	require.NoError(t, err)

	for _, it := range []models.FoodItem{
		{ID: "a", Name: "Tomato", Status: models.StatusActive},
		{ID: "b", Name: "Lettuce", Status: models.StatusActive},
	} {
		_, err = tracker.AddItem(5, it)
		require.NoError(t, err)
	}

	record, err := tracker.Cook(5, models.Recipe{
		Title:       "Tomato Soup",
		Ingredients: []string{"4 Tomatoes", "Salt"},
	})
	require.NoError(t, err)

	byID := map[string]string{}
	for _, it := range record.Inventory {
		byID[it.ID] = it.Status
	}
	assert.Equal(t, models.StatusConsumed, byID["a"])
	assert.Equal(t, models.StatusActive, byID["b"])
	assert.Equal(t, 1, record.Stats.MealsSaved)
	assert.Equal(t, 100, record.Stats.XP)
}

func TestRecipesAreSessionScoped(t *testing.T) {
	tracker, _ := newTestTracker()

	_, err := tracker.Begin(6, "frank@example.com")
	require.NoError(t, err)

	recipes := []models.Recipe{{ID: "r1", Title: "Stir Fry", Ingredients: []string{"Rice"}}}
	require.NoError(t, tracker.UpdateRecipes(6, recipes))

	got, err := tracker.Recipes(6)
	require.NoError(t, err)
	assert.Equal(t, recipes, got)

	tracker.End(6)
	_, err = tracker.Recipes(6)
	assert.ErrorIs(t, err, ErrNoSession)

	// A fresh login starts with no generated recipes.
	_, err = tracker.Begin(6, "frank@example.com")
	require.NoError(t, err)
	got, err = tracker.Recipes(6)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSavesHappenInMutationOrder(t *testing.T) {
	tracker, store := newTestTracker()

	_, err := tracker.Begin(8, "gail@example.com")
	require.NoError(t, err)
	seedSaves := len(store.saves)

	_, err = tracker.AddItem(8, models.FoodItem{ID: "a", Name: "Rice", Status: models.StatusActive})
	require.NoError(t, err)
	_, err = tracker.UpdateStatus(8, "a", models.StatusDonated)
	require.NoError(t, err)
	_, err = tracker.DeleteItem(8, "a")
	require.NoError(t, err)

	assert.Equal(t, seedSaves+3, len(store.saves), "one commit per mutation, no batching")

	// Final persisted state reflects the last mutation.
	assert.Empty(t, store.records[8].Inventory)
	assert.Equal(t, 1, store.records[8].Stats.DonationsCompleted)
}

func TestOverrideStats(t *testing.T) {
	tracker, store := newTestTracker()

	_, err := tracker.Begin(9, "hana@example.com")
	require.NoError(t, err)

	custom := models.UserStats{Level: 3, StreakDays: 9, XP: 1200, EarnedBadges: []string{"b1"}}
	record, err := tracker.OverrideStats(9, custom)
	require.NoError(t, err)

	assert.Equal(t, custom, record.Stats)
	assert.Equal(t, custom, store.records[9].Stats)
}
