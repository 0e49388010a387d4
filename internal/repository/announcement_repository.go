package repository

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/cdb-lk/cpds-api/internal/models"
)

// ErrAnnouncementNotFound signals a failed lookup by number or id.
var ErrAnnouncementNotFound = errors.New("announcement not found")

// AnnouncementRepository owns the announcement collection. Every mutation is
// a whole-collection read-modify-write against the document store, guarded
// by one mutex: writes are infrequent and the collection is small, so a
// coarse lock is the correct discipline.
type AnnouncementRepository struct {
	store DocumentStore
	mu    sync.Mutex
}

// NewAnnouncementRepository creates the repository.
func NewAnnouncementRepository(store DocumentStore) *AnnouncementRepository {
	return &AnnouncementRepository{store: store}
}

func (r *AnnouncementRepository) load(ctx context.Context) ([]models.Announcement, error) {
	var list []models.Announcement
	if _, err := r.store.Get(ctx, AnnouncementsKey, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// List returns all announcements in persisted insertion order.
func (r *AnnouncementRepository) List(ctx context.Context) ([]models.Announcement, error) {
	return r.load(ctx)
}

// Add assigns a fresh id, zeroes the receipt counter, seeds the issued
// counter from the draft, appends and persists. Field validation is the
// caller's concern; the repository stores what it is given.
func (r *AnnouncementRepository) Add(ctx context.Context, draft models.AnnouncementDraft) (*models.Announcement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	ann := models.Announcement{
		ID:               uuid.NewString(),
		Date:             draft.Date,
		AnnouncementNo:   draft.AnnouncementNo,
		ReceiptNo:        draft.ReceiptNo,
		PlantType:        draft.PlantType,
		JournalPrice:     draft.JournalPrice,
		Quantity:         draft.Quantity,
		Program:          draft.Program,
		CDODivision:      draft.CDODivision,
		GNDivision:       draft.GNDivision,
		Nursery:          draft.Nursery,
		ReceivedReceipts: 0,
		IssuedCount:      draft.IssuedCount,
		IsOtherNursery:   draft.IsOtherNursery,
	}

	list = append(list, ann)
	if err := r.store.Set(ctx, AnnouncementsKey, list); err != nil {
		return nil, err
	}
	return &ann, nil
}

// Update replaces the record with the same id wholesale. It reports false
// when no record carries that id.
func (r *AnnouncementRepository) Update(ctx context.Context, ann models.Announcement) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list, err := r.load(ctx)
	if err != nil {
		return false, err
	}

	for i := range list {
		if list[i].ID == ann.ID {
			list[i] = ann
			if err := r.store.Set(ctx, AnnouncementsKey, list); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}

// Delete removes the record with the given id and persists the remainder.
// Filtering an unknown id is a no-op, not a failure, so success is reported
// unconditionally (legacy behavior, kept on purpose).
func (r *AnnouncementRepository) Delete(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list, err := r.load(ctx)
	if err != nil {
		return false, err
	}

	filtered := make([]models.Announcement, 0, len(list))
	for _, ann := range list {
		if ann.ID != id {
			filtered = append(filtered, ann)
		}
	}
	if err := r.store.Set(ctx, AnnouncementsKey, filtered); err != nil {
		return false, err
	}
	return true, nil
}

// FindByNumber locates the unique record matching both the announcement
// number and the nursery-scope flag. Receipt updates resolve their target
// through this two-key lookup.
func (r *AnnouncementRepository) FindByNumber(ctx context.Context, announcementNo string, isOtherNursery bool) (*models.Announcement, error) {
	list, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range list {
		if list[i].AnnouncementNo == announcementNo && list[i].IsOtherNursery == isOtherNursery {
			ann := list[i]
			return &ann, nil
		}
	}
	return nil, ErrAnnouncementNotFound
}

// FindFirstByNumber matches by number alone, ignoring the nursery-scope
// partition. When a primary and an external record share a number the first
// one in insertion order wins; the management screen has always behaved
// this way and callers depend on it staying order-dependent.
func (r *AnnouncementRepository) FindFirstByNumber(ctx context.Context, announcementNo string) (*models.Announcement, error) {
	list, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range list {
		if list[i].AnnouncementNo == announcementNo {
			ann := list[i]
			return &ann, nil
		}
	}
	return nil, ErrAnnouncementNotFound
}

// SetReceivedReceipts overwrites the receipt counter of the record matching
// the two-key lookup. The value is absolute, not a delta: receipts are
// periodically reconciled against a physical count.
func (r *AnnouncementRepository) SetReceivedReceipts(ctx context.Context, announcementNo string, isOtherNursery bool, count int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list, err := r.load(ctx)
	if err != nil {
		return false, err
	}

	for i := range list {
		if list[i].AnnouncementNo == announcementNo && list[i].IsOtherNursery == isOtherNursery {
			list[i].ReceivedReceipts = count
			if err := r.store.Set(ctx, AnnouncementsKey, list); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}

// AddIssuedPlants adds a delta to the issued counter of the first record
// matching the number. Unlike receipts the count accumulates: issuing
// happens in partial batches over time. The updated record is returned.
func (r *AnnouncementRepository) AddIssuedPlants(ctx context.Context, announcementNo string, additionalCount int) (*models.Announcement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	for i := range list {
		if list[i].AnnouncementNo == announcementNo {
			list[i].IssuedCount += additionalCount
			if err := r.store.Set(ctx, AnnouncementsKey, list); err != nil {
				return nil, err
			}
			ann := list[i]
			return &ann, nil
		}
	}
	return nil, ErrAnnouncementNotFound
}
