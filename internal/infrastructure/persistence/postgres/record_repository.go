package postgres

import (
	"context"
	"errors"

	"job-portal/internal/database"

	"github.com/jackc/pgx/v5"
)

// RecordRepository keeps portal records in the portal_records table, one row per key.
type RecordRepository struct {
	db database.DB
}

func NewRecordRepository(db database.DB) *RecordRepository {
	return &RecordRepository{db: db}
}

func (r *RecordRepository) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var value []byte
	err := r.db.QueryRow(ctx, `SELECT value::text FROM portal_records WHERE key = $1`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return value, true, nil
}

func (r *RecordRepository) Set(ctx context.Context, key string, value []byte) error {
	_, err := r.db.Exec(ctx, `
INSERT INTO portal_records (key, value, updated_at)
VALUES ($1, $2::jsonb, now())
ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`,
		key, string(value),
	)
	return err
}

func (r *RecordRepository) Remove(ctx context.Context, key string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM portal_records WHERE key = $1`, key)
	return err
}

func (r *RecordRepository) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}
