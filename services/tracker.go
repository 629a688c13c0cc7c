package services

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Trupti-Varma/SAVEBITE/models"
)

// ErrNoSession is returned when a mutation arrives before Begin has
// completed a load for the user, or after End. The guard prevents a
// premature write from clobbering a record that was never loaded.
var ErrNoSession = errors.New("no active session for user")

// TrackerService owns the in-memory {inventory, stats} state for each
// authenticated session. Every mutation applies the projector and the
// ledger, then commits the combined result through the record store
// before returning. Mutations are serialized, so records are persisted
// in the order the triggering requests arrived.
type TrackerService struct {
	store   RecordStore
	matcher IngredientMatcher
	hub     *RealtimeHub

	mu       sync.Mutex
	sessions map[uint]*session
}

type session struct {
	inventory []models.FoodItem
	stats     models.UserStats
	recipes   []models.Recipe
}

func NewTrackerService(store RecordStore, matcher IngredientMatcher, hub *RealtimeHub) *TrackerService {
	return &TrackerService{
		store:    store,
		matcher:  matcher,
		hub:      hub,
		sessions: make(map[uint]*session),
	}
}

// Begin loads (or seeds) the user's record and opens the session.
// Seeds are committed immediately so the first-run branch can never
// re-trigger for an identity that already has a record.
func (t *TrackerService) Begin(userID uint, email string) (models.UserRecord, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	result, err := t.store.Load(userID, email)
	if err != nil {
		return models.UserRecord{}, err
	}

	var record models.UserRecord
	switch result.Outcome {
	case RecordFound:
		record = result.Record
	case SeedDemo:
		record = models.UserRecord{Inventory: DemoInventory(), Stats: DemoStats()}
	case SeedEmpty:
		record = models.UserRecord{Inventory: []models.FoodItem{}, Stats: EmptyStats()}
	}

	if result.Outcome != RecordFound {
		if err := t.store.Save(userID, record); err != nil {
			return models.UserRecord{}, fmt.Errorf("persisting seed: %w", err)
		}
	}

	t.sessions[userID] = &session{inventory: record.Inventory, stats: record.Stats}
	return record, nil
}

// End closes the session, dropping the in-memory state and resetting
// the guard. The next Begin (possibly another user on the same device)
// re-runs the load/seed decision. The record itself stays persisted.
func (t *TrackerService) End(userID uint) {
	t.mu.Lock()
	delete(t.sessions, userID)
	t.mu.Unlock()
}

// Snapshot returns the current session state.
func (t *TrackerService) Snapshot(userID uint) (models.UserRecord, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	s, ok := t.sessions[userID]
	if !ok {
		return models.UserRecord{}, ErrNoSession
	}
	return s.record(), nil
}

func (t *TrackerService) AddItem(userID uint, item models.FoodItem) (models.UserRecord, error) {
	return t.mutate(userID, func(s *session) {
		s.inventory = AddItem(s.inventory, item)
	})
}

func (t *TrackerService) DeleteItem(userID uint, id string) (models.UserRecord, error) {
	return t.mutate(userID, func(s *session) {
		s.inventory = RemoveItem(s.inventory, id)
	})
}

func (t *TrackerService) EditItem(userID uint, item models.FoodItem) (models.UserRecord, error) {
	return t.mutate(userID, func(s *session) {
		s.inventory = EditItem(s.inventory, item)
	})
}

// UpdateStatus transitions one item out of the active state. Marking an
// item donated also credits the ledger.
func (t *TrackerService) UpdateStatus(userID uint, id, status string) (models.UserRecord, error) {
	record, err := t.mutate(userID, func(s *session) {
		s.inventory = SetItemStatus(s.inventory, id, status)
		if status == models.StatusDonated {
			s.stats = MarkDonated(s.stats)
		}
	})
	if err == nil && status == models.StatusDonated {
		t.notify(userID, "donation", "Donation recorded, +50 XP", record.Stats)
	}
	return record, err
}

// Cook consumes every active inventory item matched by the recipe's
// ingredients and credits the ledger for one cooked meal.
func (t *TrackerService) Cook(userID uint, recipe models.Recipe) (models.UserRecord, error) {
	record, err := t.mutate(userID, func(s *session) {
		s.inventory = ConsumeForRecipe(s.inventory, recipe, t.matcher)
		s.stats = CookRecipe(s.stats)
	})
	if err == nil {
		t.notify(userID, "recipe", fmt.Sprintf("Cooked %q, +100 XP", recipe.Title), record.Stats)
	}
	return record, err
}

// CompleteDonation marks the listed items donated and credits the batch
// as a single completed donation worth the claimed amount.
func (t *TrackerService) CompleteDonation(userID uint, itemIDs []string, amount float64, ngoName string) (models.UserRecord, error) {
	record, err := t.mutate(userID, func(s *session) {
		donated := make([]models.FoodItem, 0, len(itemIDs))
		for _, id := range itemIDs {
			for _, it := range s.inventory {
				if it.ID == id {
					donated = append(donated, it)
					break
				}
			}
			s.inventory = SetItemStatus(s.inventory, id, models.StatusDonated)
		}
		s.stats = CompleteDonation(s.stats, donated, amount, ngoName, time.Now())
	})
	if err == nil {
		t.notify(userID, "donation",
			fmt.Sprintf("Donation of %d item(s) completed, +%d XP", len(itemIDs), len(itemIDs)*donateXP),
			record.Stats)
	}
	return record, err
}

// OverrideStats replaces the stats record wholesale. Used by the
// profile screen for manual adjustments (level, streak).
func (t *TrackerService) OverrideStats(userID uint, stats models.UserStats) (models.UserRecord, error) {
	return t.mutate(userID, func(s *session) {
		s.stats = stats
	})
}

// UpdateRecipes stores the latest generated recipes for the session.
// Recipes are session-scoped only and never persisted.
func (t *TrackerService) UpdateRecipes(userID uint, recipes []models.Recipe) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	s, ok := t.sessions[userID]
	if !ok {
		return ErrNoSession
	}
	s.recipes = recipes
	return nil
}

func (t *TrackerService) Recipes(userID uint) ([]models.Recipe, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	s, ok := t.sessions[userID]
	if !ok {
		return nil, ErrNoSession
	}
	return s.recipes, nil
}

// mutate applies fn to the session state and commits the result. The
// commit happens under the lock, so saves reach the store in dispatch
// order.
func (t *TrackerService) mutate(userID uint, fn func(*session)) (models.UserRecord, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	s, ok := t.sessions[userID]
	if !ok {
		return models.UserRecord{}, ErrNoSession
	}

	fn(s)

	record := s.record()
	if err := t.store.Save(userID, record); err != nil {
		return models.UserRecord{}, err
	}
	return record, nil
}

func (t *TrackerService) notify(userID uint, typ, message string, stats models.UserStats) {
	EmitEvent(userID, typ, message)
	if t.hub != nil {
		t.hub.BroadcastStats(userID, stats)
	}
}

func (s *session) record() models.UserRecord {
	return models.UserRecord{Inventory: s.inventory, Stats: s.stats}
}

// Package-level tracker wired once at startup, in the same spirit as
// the event bus below.
var defaultTracker *TrackerService

func InitTracker(store RecordStore, matcher IngredientMatcher, hub *RealtimeHub) {
	defaultTracker = NewTrackerService(store, matcher, hub)
}

func Tracker() *TrackerService { return defaultTracker }
