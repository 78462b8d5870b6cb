package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"job-portal/internal/domain/company"
	"job-portal/internal/domain/invitation"
	"job-portal/internal/domain/jobseeker"
	"job-portal/internal/domain/portal"
	"job-portal/internal/infrastructure/kv"

	"go.uber.org/zap"
)

const (
	KeyJobSeekers     = "jobSeekers"
	KeyInvitations    = "invitations"
	KeyCurrentUser    = "currentUser"
	KeyCurrentCompany = "currentCompany"
)

type PortalStore interface {
	Load(ctx context.Context) (portal.State, error)
	Save(ctx context.Context, s portal.State) error
	ClearCurrentUser(ctx context.Context) error
	ClearCurrentCompany(ctx context.Context) error
}

// KVPortalStore mirrors the portal state into four independent records of a kv.Store.
// Every Save rewrites all four records.
type KVPortalStore struct {
	kv     kv.Store
	logger *zap.Logger
}

func NewKVPortalStore(store kv.Store, logger *zap.Logger) *KVPortalStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &KVPortalStore{kv: store, logger: logger}
}

// Load reads the four records. Missing or malformed records fall back to an
// empty list or nil; only backend errors are returned.
func (s *KVPortalStore) Load(ctx context.Context) (portal.State, error) {
	st := portal.Empty()

	seekers, err := readRecord[[]jobseeker.Profile](ctx, s, KeyJobSeekers)
	if err != nil {
		return portal.State{}, err
	}
	if seekers != nil {
		st.JobSeekers = seekers
	}

	invs, err := readRecord[[]invitation.Invitation](ctx, s, KeyInvitations)
	if err != nil {
		return portal.State{}, err
	}
	if invs != nil {
		st.Invitations = invs
	}

	if st.CurrentUser, err = readRecord[*jobseeker.Profile](ctx, s, KeyCurrentUser); err != nil {
		return portal.State{}, err
	}
	if st.CurrentCompany, err = readRecord[*company.Company](ctx, s, KeyCurrentCompany); err != nil {
		return portal.State{}, err
	}

	return st, nil
}

// Save writes all four records in sequence. There is no transaction across
// records; a failure part way leaves the earlier writes in place.
func (s *KVPortalStore) Save(ctx context.Context, st portal.State) error {
	seekers := st.JobSeekers
	if seekers == nil {
		seekers = []jobseeker.Profile{}
	}
	if err := s.write(ctx, KeyJobSeekers, seekers); err != nil {
		return err
	}

	invs := st.Invitations
	if invs == nil {
		invs = []invitation.Invitation{}
	}
	if err := s.write(ctx, KeyInvitations, invs); err != nil {
		return err
	}

	if st.CurrentUser == nil {
		if err := s.remove(ctx, KeyCurrentUser); err != nil {
			return err
		}
	} else if err := s.write(ctx, KeyCurrentUser, st.CurrentUser); err != nil {
		return err
	}

	if st.CurrentCompany == nil {
		return s.remove(ctx, KeyCurrentCompany)
	}
	return s.write(ctx, KeyCurrentCompany, st.CurrentCompany)
}

func (s *KVPortalStore) ClearCurrentUser(ctx context.Context) error {
	return s.remove(ctx, KeyCurrentUser)
}

func (s *KVPortalStore) ClearCurrentCompany(ctx context.Context) error {
	return s.remove(ctx, KeyCurrentCompany)
}

func readRecord[T any](ctx context.Context, s *KVPortalStore, key string) (T, error) {
	var zero T
	b, ok, err := s.kv.Get(ctx, key)
	if err != nil {
		return zero, fmt.Errorf("read %s: %w", key, err)
	}
	if !ok || len(b) == 0 {
		return zero, nil
	}
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		s.logger.Warn("discarding malformed portal record", zap.String("key", key), zap.Error(err))
		return zero, nil
	}
	return v, nil
}

func (s *KVPortalStore) write(ctx context.Context, key string, value any) error {
	b, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := s.kv.Set(ctx, key, b); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

func (s *KVPortalStore) remove(ctx context.Context, key string) error {
	if err := s.kv.Remove(ctx, key); err != nil {
		return fmt.Errorf("remove %s: %w", key, err)
	}
	return nil
}
