package seeder

import (
	"context"
	"errors"
	"testing"

	"job-portal/internal/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRows struct {
	cols []string
	i    int
}

func (r *fakeRows) Close()     {}
func (r *fakeRows) Err() error { return nil }
func (r *fakeRows) Next() bool {
	r.i++
	return r.i <= len(r.cols)
}
func (r *fakeRows) Scan(dest ...any) error {
	*(dest[0].(*string)) = r.cols[r.i-1]
	return nil
}

type fakeTx struct {
	database.Tx
	db *fakeDB
}

func (t fakeTx) Exec(_ context.Context, _ string, args ...any) (int64, error) {
	t.db.inserted = append(t.db.inserted, args[0].(string))
	return 1, nil
}
func (t fakeTx) Commit(context.Context) error {
	t.db.committed = true
	return nil
}
func (t fakeTx) Rollback(context.Context) error { return nil }

type fakeDB struct {
	database.DB
	cols      []string
	inserted  []string
	committed bool
}

func (f *fakeDB) Query(context.Context, string, ...any) (database.Rows, error) {
	return &fakeRows{cols: f.cols}, nil
}

func (f *fakeDB) Begin(context.Context) (database.Tx, error) {
	return fakeTx{db: f}, nil
}

func TestPortalRecordsSeeder(t *testing.T) {
	db := &fakeDB{cols: []string{"key", "value", "updated_at"}}
	require.NoError(t, Runner{Seeders: Defaults()}.Run(context.Background(), db))
	assert.Equal(t, []string{"jobSeekers", "invitations"}, db.inserted)
	assert.True(t, db.committed)
}

func TestPortalRecordsSeeder_SchemaMismatch(t *testing.T) {
	db := &fakeDB{cols: []string{"key"}}
	err := Runner{Seeders: Defaults()}.Run(context.Background(), db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "seed portal_records")
	assert.Contains(t, err.Error(), "portal_records.value")
	assert.Empty(t, db.inserted)
}

type failingSeeder struct{}

func (failingSeeder) Name() string                           { return "broken" }
func (failingSeeder) Run(context.Context, database.DB) error { return errors.New("boom") }

func TestRunner(t *testing.T) {
	assert.Error(t, Runner{}.Run(context.Background(), nil))

	err := Runner{Seeders: []Seeder{nil, failingSeeder{}}}.Run(context.Background(), &fakeDB{})
	assert.EqualError(t, err, "seed broken: boom")
}
