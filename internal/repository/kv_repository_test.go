package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newKVRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	sqlxDB := sqlx.NewDb(db, "postgres")
	return sqlxDB, mock, func() {
		sqlxDB.Close()
		db.Close()
	}
}

func TestKVRepositoryGetFound(t *testing.T) {
	db, mock, cleanup := newKVRepoMock(t)
	defer cleanup()

	repo := NewKVRepository(db)
	rows := sqlmock.NewRows([]string{"value"}).AddRow([]byte(`{"programs":["Standard Program"]}`))
	mock.ExpectQuery("SELECT value FROM kv_documents").
		WithArgs(SettingsKey).
		WillReturnRows(rows)

	var dest map[string][]string
	found, err := repo.Get(context.Background(), SettingsKey, &dest)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []string{"Standard Program"}, dest["programs"])
}

func TestKVRepositoryGetMissing(t *testing.T) {
	db, mock, cleanup := newKVRepoMock(t)
	defer cleanup()

	repo := NewKVRepository(db)
	mock.ExpectQuery("SELECT value FROM kv_documents").
		WithArgs(AnnouncementsKey).
		WillReturnRows(sqlmock.NewRows([]string{"value"}))

	var dest []string
	found, err := repo.Get(context.Background(), AnnouncementsKey, &dest)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, dest)
}

func TestKVRepositorySetUpserts(t *testing.T) {
	db, mock, cleanup := newKVRepoMock(t)
	defer cleanup()

	repo := NewKVRepository(db)
	mock.ExpectExec("INSERT INTO kv_documents").
		WithArgs(SettingsKey, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Set(context.Background(), SettingsKey, map[string]string{"a": "b"})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}
