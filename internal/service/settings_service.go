package service

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cdb-lk/cpds-api/internal/dto"
	"github.com/cdb-lk/cpds-api/internal/models"
	appErrors "github.com/cdb-lk/cpds-api/pkg/errors"
)

type settingsRepository interface {
	Get(ctx context.Context) (*models.SettingsData, error)
	Save(ctx context.Context, settings *models.SettingsData) error
}

// SettingsService maintains the taxonomy lists and the price list. Every
// mutation is whole-document replace-and-persist. Duplicate entries are
// allowed on purpose; only empty (post-trim) values are rejected.
type SettingsService struct {
	repo      settingsRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewSettingsService constructs a SettingsService.
func NewSettingsService(repo settingsRepository, validate *validator.Validate, logger *zap.Logger) *SettingsService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SettingsService{repo: repo, validator: validate, logger: logger}
}

// Get returns the current settings (seed defaults until first save).
func (s *SettingsService) Get(ctx context.Context) (*models.SettingsData, error) {
	settings, err := s.repo.Get(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load settings")
	}
	return settings, nil
}

// Save overwrites the settings document wholesale.
func (s *SettingsService) Save(ctx context.Context, settings *models.SettingsData) (*models.SettingsData, error) {
	if err := s.repo.Save(ctx, settings); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save settings")
	}
	return settings, nil
}

// AddListItem appends a trimmed value to the named list.
func (s *SettingsService) AddListItem(ctx context.Context, list string, req dto.AddListItemRequest) (*models.SettingsData, error) {
	value := strings.TrimSpace(req.Value)
	if value == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "value must not be empty")
	}

	settings, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}
	target, err := namedList(settings, list)
	if err != nil {
		return nil, err
	}
	*target = append(*target, value)
	return s.Save(ctx, settings)
}

// RemoveListItem removes the entry at the given position of the named list.
func (s *SettingsService) RemoveListItem(ctx context.Context, list string, index int) (*models.SettingsData, error) {
	settings, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}
	target, err := namedList(settings, list)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(*target) {
		return nil, appErrors.Clone(appErrors.ErrValidation, "index out of range")
	}
	*target = append((*target)[:index], (*target)[index+1:]...)
	return s.Save(ctx, settings)
}

// AddJournalPrice appends a price-list entry with a fresh id.
func (s *SettingsService) AddJournalPrice(ctx context.Context, req dto.AddJournalPriceRequest) (*models.SettingsData, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "price is required")
	}
	settings, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}
	settings.JournalPrices = append(settings.JournalPrices, models.JournalPrice{
		ID:          uuid.NewString(),
		Price:       req.Price,
		Description: req.Description,
	})
	return s.Save(ctx, settings)
}

// RemoveJournalPrice drops the price-list entry with the given id. An
// unknown id leaves the list unchanged.
func (s *SettingsService) RemoveJournalPrice(ctx context.Context, id string) (*models.SettingsData, error) {
	settings, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}
	prices := make([]models.JournalPrice, 0, len(settings.JournalPrices))
	for _, price := range settings.JournalPrices {
		if price.ID != id {
			prices = append(prices, price)
		}
	}
	settings.JournalPrices = prices
	return s.Save(ctx, settings)
}

func namedList(settings *models.SettingsData, list string) (*[]string, error) {
	switch list {
	case models.ListCDODivisions:
		return &settings.CDODivisions, nil
	case models.ListGNDivisions:
		return &settings.GNDivisions, nil
	case models.ListPrograms:
		return &settings.Programs, nil
	case models.ListOtherNurseries:
		return &settings.OtherNurseries, nil
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, "unknown settings list")
	}
}
