package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cdb-lk/cpds-api/internal/models"
)

func TestSettingsRepositoryGetFallsBackToDefaults(t *testing.T) {
	repo := NewSettingsRepository(newMemoryStore())

	settings, err := repo.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Colombo North", "Colombo South"}, settings.CDODivisions)
	assert.Equal(t, []string{"Standard Program", "Special Subsidy"}, settings.Programs)
	require.Len(t, settings.JournalPrices, 1)
	assert.Equal(t, "500.00", settings.JournalPrices[0].Price)
}

func TestSettingsRepositorySaveRoundTrip(t *testing.T) {
	store := newMemoryStore()
	repo := NewSettingsRepository(store)

	saved := &models.SettingsData{
		CDODivisions: []string{"North Only"},
		Programs:     []string{"P1", "P1"},
	}
	require.NoError(t, repo.Save(context.Background(), saved))

	loaded, err := repo.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"North Only"}, loaded.CDODivisions)
	assert.Equal(t, []string{"P1", "P1"}, loaded.Programs)
	assert.Empty(t, loaded.OtherNurseries)
}
