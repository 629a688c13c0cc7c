package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedOutcome(t *testing.T) {
	assert.Equal(t, SeedDemo, seedOutcome(DemoEmail))
	assert.Equal(t, SeedEmpty, seedOutcome("someone@example.com"))
	assert.Equal(t, SeedEmpty, seedOutcome(""))
}

func TestDecodeRecord(t *testing.T) {
	payload := []byte(`{
		"inventory": [{"id":"1","name":"Tomato","status":"active","quantity":2,"unit":"pcs","expiryDate":"2025-06-01T00:00:00Z","category":"Produce"}],
		"stats": {"mealsSaved":3,"co2Saved":1.5,"xp":150,"level":2}
	}`)

	record, err := decodeRecord(payload)
	require.NoError(t, err)

	require.Len(t, record.Inventory, 1)
	assert.Equal(t, "Tomato", record.Inventory[0].Name)
	assert.Equal(t, 3, record.Stats.MealsSaved)
	assert.Equal(t, 1.5, record.Stats.CO2Saved)
}

func TestDecodeRecordDefaultsMissingFields(t *testing.T) {
	// Records written by older versions may lack whole sections;
	// counters they never knew about must come back as zero.
	record, err := decodeRecord([]byte(`{"stats":{"mealsSaved":1}}`))
	require.NoError(t, err)

	assert.NotNil(t, record.Inventory)
	assert.Empty(t, record.Inventory)
	assert.Equal(t, 0, record.Stats.DonationsCompleted)
	assert.Equal(t, 0, record.Stats.XP)
}

func TestDecodeRecordRejectsMalformedPayload(t *testing.T) {
	_, err := decodeRecord([]byte(`{"inventory": [`))
	assert.Error(t, err)

	_, err = decodeRecord([]byte(`not json at all`))
	assert.Error(t, err)
}
