package service

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/cdb-lk/cpds-api/internal/dto"
	"github.com/cdb-lk/cpds-api/internal/models"
	"github.com/cdb-lk/cpds-api/internal/repository"
	appErrors "github.com/cdb-lk/cpds-api/pkg/errors"
)

type announcementRepository interface {
	List(ctx context.Context) ([]models.Announcement, error)
	Add(ctx context.Context, draft models.AnnouncementDraft) (*models.Announcement, error)
	Update(ctx context.Context, ann models.Announcement) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
	FindByNumber(ctx context.Context, announcementNo string, isOtherNursery bool) (*models.Announcement, error)
	FindFirstByNumber(ctx context.Context, announcementNo string) (*models.Announcement, error)
	SetReceivedReceipts(ctx context.Context, announcementNo string, isOtherNursery bool, count int) (bool, error)
	AddIssuedPlants(ctx context.Context, announcementNo string, additionalCount int) (*models.Announcement, error)
}

type announcementSettingsRepository interface {
	Get(ctx context.Context) (*models.SettingsData, error)
}

// AnnouncementService orchestrates the announcement ledger: role-scoped
// listing, creation, management updates and the two counter mutations.
type AnnouncementService struct {
	repo      announcementRepository
	settings  announcementSettingsRepository
	validator *validator.Validate
	metrics   *MetricsService
	logger    *zap.Logger
}

// NewAnnouncementService constructs an AnnouncementService.
func NewAnnouncementService(repo announcementRepository, settings announcementSettingsRepository, validate *validator.Validate, metrics *MetricsService, logger *zap.Logger) *AnnouncementService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AnnouncementService{repo: repo, settings: settings, validator: validate, metrics: metrics, logger: logger}
}

// List returns the announcements visible to the role, optionally narrowed
// by partition scope and a search string.
func (s *AnnouncementService) List(ctx context.Context, role models.UserRole, query dto.ListAnnouncementsQuery) ([]models.Announcement, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load announcements")
	}
	visible := VisibleAnnouncements(role, list)

	filtered := make([]models.Announcement, 0, len(visible))
	needle := strings.ToLower(strings.TrimSpace(query.Search))
	for _, ann := range visible {
		switch query.Scope {
		case "main":
			if ann.IsOtherNursery {
				continue
			}
		case "external":
			if !ann.IsOtherNursery {
				continue
			}
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(ann.AnnouncementNo), needle) &&
			!strings.Contains(strings.ToLower(ann.CDODivision), needle) {
			continue
		}
		filtered = append(filtered, ann)
	}
	return filtered, nil
}

// Create validates presence of the tracking numbers and quantity, then
// stores the draft. When forceOther is set the record is forced into the
// external-nursery partition regardless of the payload flag.
func (s *AnnouncementService) Create(ctx context.Context, req dto.CreateAnnouncementRequest, forceOther bool) (*models.Announcement, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "announcement number, receipt number and quantity are required")
	}
	draft := req.Draft()
	if forceOther {
		draft.IsOtherNursery = true
	}
	ann, err := s.repo.Add(ctx, draft)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to store announcement")
	}
	s.metrics.RecordAnnouncementCreated()
	s.logger.Info("announcement created",
		zap.String("id", ann.ID),
		zap.String("announcement_no", ann.AnnouncementNo),
		zap.Bool("other_nursery", ann.IsOtherNursery))
	return ann, nil
}

// Update replaces a record wholesale. The external flag is re-derived from
// the current taxonomy: a record whose nursery appears in the
// other-nurseries list belongs to the external partition.
func (s *AnnouncementService) Update(ctx context.Context, ann models.Announcement) (*models.Announcement, error) {
	if ann.ID == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "id is required")
	}
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load settings")
	}
	ann.IsOtherNursery = containsString(settings.OtherNurseries, ann.Nursery)

	ok, err := s.repo.Update(ctx, ann)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update announcement")
	}
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "no announcement with that id")
	}
	return &ann, nil
}

// Delete removes a record by id. A missing id is a no-op that still
// succeeds, mirroring the behavior record keepers rely on when retrying a
// delete.
func (s *AnnouncementService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.Delete(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete announcement")
	}
	return nil
}

// FindReceiptTarget resolves the record a receipt update would touch via
// the two-key number + scope lookup.
func (s *AnnouncementService) FindReceiptTarget(ctx context.Context, announcementNo string, isOtherNursery bool) (*models.Announcement, error) {
	ann, err := s.repo.FindByNumber(ctx, announcementNo, isOtherNursery)
	if err != nil {
		if errors.Is(err, repository.ErrAnnouncementNotFound) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "no announcement with that number")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to look up announcement")
	}
	return ann, nil
}

// FindForManagement matches by number alone, ignoring the partition. When
// both partitions hold the number the earliest record wins.
func (s *AnnouncementService) FindForManagement(ctx context.Context, announcementNo string) (*models.Announcement, error) {
	ann, err := s.repo.FindFirstByNumber(ctx, announcementNo)
	if err != nil {
		if errors.Is(err, repository.ErrAnnouncementNotFound) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "no announcement with that number")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to look up announcement")
	}
	return ann, nil
}

// SetReceivedReceipts overwrites the reconciled receipt count.
func (s *AnnouncementService) SetReceivedReceipts(ctx context.Context, req dto.UpdateReceiptsRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "announcement number is required")
	}
	ok, err := s.repo.SetReceivedReceipts(ctx, req.AnnouncementNo, req.IsOtherNursery, req.Count)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update receipts")
	}
	if !ok {
		return appErrors.Clone(appErrors.ErrNotFound, "no announcement with that number")
	}
	s.metrics.RecordReceiptsReconciled()
	return nil
}

// AddIssuedPlants accumulates issued stock against the first record
// matching the number and returns the updated record.
func (s *AnnouncementService) AddIssuedPlants(ctx context.Context, req dto.AddIssuedRequest) (*models.Announcement, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "announcement number is required")
	}
	ann, err := s.repo.AddIssuedPlants(ctx, req.AnnouncementNo, req.AdditionalCount)
	if err != nil {
		if errors.Is(err, repository.ErrAnnouncementNotFound) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "no announcement with that number")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update issued count")
	}
	s.metrics.RecordPlantsIssued(req.AdditionalCount)
	return ann, nil
}

func containsString(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}
