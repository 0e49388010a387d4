package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Logical document keys. The names are carried over from the legacy system
// so existing exports of its data can be imported verbatim.
const (
	AnnouncementsKey = "cpds_announcements"
	SettingsKey      = "cpds_settings"
)

// DocumentStore exposes get/set of opaque JSON documents addressed by a
// small fixed set of keys. It is the only persistence contract the domain
// repositories rely on.
type DocumentStore interface {
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}) error
}

// KVRepository persists JSON documents in the kv_documents table.
type KVRepository struct {
	db *sqlx.DB
}

// NewKVRepository constructs the repository.
func NewKVRepository(db *sqlx.DB) *KVRepository {
	return &KVRepository{db: db}
}

// Get unmarshals the stored document into dest. It reports false without
// touching dest when no document exists under the key.
func (r *KVRepository) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	const query = `SELECT value FROM kv_documents WHERE key = $1`
	var raw []byte
	if err := r.db.GetContext(ctx, &raw, query, key); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("get document %s: %w", key, err)
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, fmt.Errorf("unmarshal document %s: %w", key, err)
	}
	return true, nil
}

// Set marshals value and upserts it under the key.
func (r *KVRepository) Set(ctx context.Context, key string, value interface{}) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal document %s: %w", key, err)
	}
	const query = `INSERT INTO kv_documents (key, value, updated_at)
VALUES ($1, $2, NOW())
ON CONFLICT (key)
DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()`
	if _, err := r.db.ExecContext(ctx, query, key, payload); err != nil {
		return fmt.Errorf("set document %s: %w", key, err)
	}
	return nil
}
