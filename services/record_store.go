package services

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Trupti-Varma/SAVEBITE/models"

	"gorm.io/gorm"
)

// LoadOutcome is the explicit result of looking up a user's record, so
// the first-login seeding policy is a visible decision rather than a
// side effect of a missing row.
type LoadOutcome int

const (
	// RecordFound means a parseable record exists for the user.
	RecordFound LoadOutcome = iota
	// SeedDemo means no record exists and the identity is the demo
	// account: install the sample dataset.
	SeedDemo
	// SeedEmpty means no usable record exists: install the zeroed
	// starting state. Also returned when a stored payload fails to
	// parse; the corrupt row is discarded silently.
	SeedEmpty
)

type LoadResult struct {
	Outcome LoadOutcome
	Record  models.UserRecord
}

// RecordStore persists the per-user {inventory, stats} document. It is
// injected into the tracker so tests can use an in-memory fake.
type RecordStore interface {
	Load(userID uint, email string) (LoadResult, error)
	Save(userID uint, record models.UserRecord) error
}

// GormRecordStore keeps each user's record as a single JSON row.
type GormRecordStore struct {
	db *gorm.DB
}

func NewGormRecordStore(db *gorm.DB) *GormRecordStore {
	return &GormRecordStore{db: db}
}

func (s *GormRecordStore) Load(userID uint, email string) (LoadResult, error) {
	var row models.StoredRecord
	err := s.db.Where("user_id = ?", userID).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return LoadResult{Outcome: seedOutcome(email)}, nil
	}
	if err != nil {
		return LoadResult{}, fmt.Errorf("loading record for user %d: %w", userID, err)
	}

	record, err := decodeRecord([]byte(row.Payload))
	if err != nil {
		// Corrupt payload: treat as absent, but never re-run the demo
		// seed over a row that once existed.
		return LoadResult{Outcome: SeedEmpty}, nil
	}
	return LoadResult{Outcome: RecordFound, Record: record}, nil
}

func (s *GormRecordStore) Save(userID uint, record models.UserRecord) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encoding record for user %d: %w", userID, err)
	}

	row := models.StoredRecord{UserID: userID, Payload: string(payload)}
	err = s.db.Where("user_id = ?", userID).
		Assign(models.StoredRecord{Payload: string(payload)}).
		FirstOrCreate(&row).Error
	if err != nil {
		return fmt.Errorf("saving record for user %d: %w", userID, err)
	}
	return nil
}

// seedOutcome decides which seed a first-time identity receives.
func seedOutcome(email string) LoadOutcome {
	if email == DemoEmail {
		return SeedDemo
	}
	return SeedEmpty
}

// decodeRecord parses a stored payload. Missing fields fall back to an
// empty inventory and zeroed counters, so partially-initialized records
// from older versions stay loadable.
func decodeRecord(payload []byte) (models.UserRecord, error) {
	var record models.UserRecord
	if err := json.Unmarshal(payload, &record); err != nil {
		return models.UserRecord{}, err
	}
	if record.Inventory == nil {
		record.Inventory = []models.FoodItem{}
	}
	return record, nil
}
