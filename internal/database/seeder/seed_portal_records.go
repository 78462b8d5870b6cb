package seeder

import (
	"context"
	"fmt"

	"job-portal/internal/database"
)

// PortalRecordsSeeder creates the two list records as empty JSON arrays so a
// fresh database reads the same as a store that has been saved once.
// Existing records are left alone.
type PortalRecordsSeeder struct{}

func (PortalRecordsSeeder) Name() string { return "portal_records" }

func (PortalRecordsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "portal_records", "key", "value", "updated_at"); err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	for _, key := range []string{"jobSeekers", "invitations"} {
		if _, err := tx.Exec(
			ctx,
			`INSERT INTO portal_records (key, value) VALUES ($1, '[]'::jsonb) ON CONFLICT (key) DO NOTHING`,
			key,
		); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
