package repository

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cdb-lk/cpds-api/internal/models"
)

// memoryStore is an in-memory DocumentStore for repository tests.
type memoryStore struct {
	docs map[string][]byte
}

func newMemoryStore() *memoryStore {
	return &memoryStore{docs: map[string][]byte{}}
}

func (s *memoryStore) Get(_ context.Context, key string, dest interface{}) (bool, error) {
	raw, ok := s.docs[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (s *memoryStore) Set(_ context.Context, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	s.docs[key] = raw
	return nil
}

func seedAnnouncements(t *testing.T, store *memoryStore, list []models.Announcement) {
	t.Helper()
	require.NoError(t, store.Set(context.Background(), AnnouncementsKey, list))
}

func TestAnnouncementRepositoryAddAssignsIDAndZeroesReceipts(t *testing.T) {
	store := newMemoryStore()
	repo := NewAnnouncementRepository(store)

	first, err := repo.Add(context.Background(), models.AnnouncementDraft{
		AnnouncementNo: "A-100",
		Quantity:       50,
		IssuedCount:    10,
	})
	require.NoError(t, err)
	second, err := repo.Add(context.Background(), models.AnnouncementDraft{AnnouncementNo: "A-101"})
	require.NoError(t, err)

	assert.NotEmpty(t, first.ID)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, 0, first.ReceivedReceipts)
	assert.Equal(t, 10, first.IssuedCount)

	list, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "A-100", list[0].AnnouncementNo)
	assert.Equal(t, "A-101", list[1].AnnouncementNo)
}

func TestAnnouncementRepositoryUpdateUnknownID(t *testing.T) {
	store := newMemoryStore()
	repo := NewAnnouncementRepository(store)
	seedAnnouncements(t, store, []models.Announcement{{ID: "1", AnnouncementNo: "A-1"}})

	ok, err := repo.Update(context.Background(), models.Announcement{ID: "missing"})
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = repo.Update(context.Background(), models.Announcement{ID: "1", AnnouncementNo: "A-1-edited"})
	require.NoError(t, err)
	assert.True(t, ok)

	list, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "A-1-edited", list[0].AnnouncementNo)
}

func TestAnnouncementRepositoryDeleteAlwaysSucceeds(t *testing.T) {
	store := newMemoryStore()
	repo := NewAnnouncementRepository(store)
	seedAnnouncements(t, store, []models.Announcement{{ID: "1"}, {ID: "2"}})

	ok, err := repo.Delete(context.Background(), "1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Delete(context.Background(), "never-existed")
	require.NoError(t, err)
	assert.True(t, ok)

	list, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "2", list[0].ID)
}

func TestAnnouncementRepositoryFindByNumberUsesBothKeys(t *testing.T) {
	store := newMemoryStore()
	repo := NewAnnouncementRepository(store)
	seedAnnouncements(t, store, []models.Announcement{
		{ID: "1", AnnouncementNo: "A-1", IsOtherNursery: false, Quantity: 10},
		{ID: "2", AnnouncementNo: "A-1", IsOtherNursery: true, Quantity: 20},
	})

	primary, err := repo.FindByNumber(context.Background(), "A-1", false)
	require.NoError(t, err)
	assert.Equal(t, "1", primary.ID)

	external, err := repo.FindByNumber(context.Background(), "A-1", true)
	require.NoError(t, err)
	assert.Equal(t, "2", external.ID)

	_, err = repo.FindByNumber(context.Background(), "A-2", false)
	assert.ErrorIs(t, err, ErrAnnouncementNotFound)
}

func TestAnnouncementRepositoryFindFirstByNumberIgnoresPartition(t *testing.T) {
	store := newMemoryStore()
	repo := NewAnnouncementRepository(store)
	seedAnnouncements(t, store, []models.Announcement{
		{ID: "ext", AnnouncementNo: "A-1", IsOtherNursery: true},
		{ID: "pri", AnnouncementNo: "A-1", IsOtherNursery: false},
	})

	found, err := repo.FindFirstByNumber(context.Background(), "A-1")
	require.NoError(t, err)
	assert.Equal(t, "ext", found.ID)
}

func TestAnnouncementRepositorySetReceivedReceiptsOverwrites(t *testing.T) {
	store := newMemoryStore()
	repo := NewAnnouncementRepository(store)
	seedAnnouncements(t, store, []models.Announcement{
		{ID: "1", AnnouncementNo: "A-1", ReceivedReceipts: 5},
	})

	ok, err := repo.SetReceivedReceipts(context.Background(), "A-1", false, 42)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.SetReceivedReceipts(context.Background(), "A-1", false, 7)
	require.NoError(t, err)
	assert.True(t, ok)

	list, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 7, list[0].ReceivedReceipts)

	ok, err = repo.SetReceivedReceipts(context.Background(), "A-1", true, 3)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAnnouncementRepositoryAddIssuedPlantsAccumulates(t *testing.T) {
	store := newMemoryStore()
	repo := NewAnnouncementRepository(store)
	seedAnnouncements(t, store, []models.Announcement{
		{ID: "1", AnnouncementNo: "A-1", IssuedCount: 10},
	})

	updated, err := repo.AddIssuedPlants(context.Background(), "A-1", 15)
	require.NoError(t, err)
	assert.Equal(t, 25, updated.IssuedCount)

	updated, err = repo.AddIssuedPlants(context.Background(), "A-1", 5)
	require.NoError(t, err)
	assert.Equal(t, 30, updated.IssuedCount)

	_, err = repo.AddIssuedPlants(context.Background(), "A-404", 1)
	assert.ErrorIs(t, err, ErrAnnouncementNotFound)
}
