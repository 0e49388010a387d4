package repository

import (
	"context"

	"github.com/cdb-lk/cpds-api/internal/models"
)

// SettingsRepository owns the taxonomy document.
type SettingsRepository struct {
	store DocumentStore
}

// NewSettingsRepository constructs the repository.
func NewSettingsRepository(store DocumentStore) *SettingsRepository {
	return &SettingsRepository{store: store}
}

// Get returns the persisted settings, falling back to the built-in seed
// taxonomy when nothing has been saved yet.
func (r *SettingsRepository) Get(ctx context.Context) (*models.SettingsData, error) {
	var settings models.SettingsData
	found, err := r.store.Get(ctx, SettingsKey, &settings)
	if err != nil {
		return nil, err
	}
	if !found {
		return models.DefaultSettings(), nil
	}
	return &settings, nil
}

// Save overwrites the settings document wholesale.
func (r *SettingsRepository) Save(ctx context.Context, settings *models.SettingsData) error {
	return r.store.Set(ctx, SettingsKey, settings)
}
