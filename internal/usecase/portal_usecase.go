package usecase

import (
	"context"
	"fmt"
	"sync"

	"job-portal/internal/clock"
	"job-portal/internal/domain/company"
	"job-portal/internal/domain/jobseeker"
	"job-portal/internal/domain/portal"
	"job-portal/internal/notify"
	"job-portal/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	RoleJobSeeker = "job_seeker"
	RoleCompany   = "company"
)

type Notifier interface {
	Show(message string, kind notify.Kind) notify.Notification
}

type SessionView struct {
	JobSeeker  *jobseeker.Profile
	Company    *company.Company
	ActiveRole string
}

type SessionUsecase interface {
	Session(ctx context.Context) SessionView
}

type PortalParams struct {
	Store     repository.PortalStore
	Notifier  Notifier
	Clock     clock.Clock
	NewID     func() string
	Companies []company.Company
	Logger    *zap.Logger
}

// Portal owns the single portal state. Every operation runs under one lock, so
// handlers observe the same one-at-a-time execution a browser event loop gives.
type Portal struct {
	mu    sync.Mutex
	state portal.State

	store     repository.PortalStore
	notifier  Notifier
	clock     clock.Clock
	newID     func() string
	companies []company.Company
	logger    *zap.Logger
}

func NewPortal(ctx context.Context, p PortalParams) (*Portal, error) {
	if p.Store == nil {
		return nil, fmt.Errorf("portal: nil store")
	}
	u := &Portal{
		store:     p.Store,
		notifier:  p.Notifier,
		clock:     p.Clock,
		newID:     p.NewID,
		companies: p.Companies,
		logger:    p.Logger,
	}
	if u.clock == nil {
		u.clock = clock.System()
	}
	if u.newID == nil {
		u.newID = uuid.NewString
	}
	if u.companies == nil {
		u.companies = company.Directory
	}
	if u.logger == nil {
		u.logger = zap.NewNop()
	}

	st, err := p.Store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load portal state: %w", err)
	}
	u.state = st
	u.logger.Info("portal state loaded",
		zap.Int("job_seekers", len(st.JobSeekers)),
		zap.Int("invitations", len(st.Invitations)),
		zap.Bool("job_seeker_session", st.CurrentUser != nil),
		zap.Bool("company_session", st.CurrentCompany != nil),
	)
	return u, nil
}

// Session reports both sessions. The company view takes precedence on load when a company is signed in.
func (u *Portal) Session(_ context.Context) SessionView {
	u.mu.Lock()
	defer u.mu.Unlock()

	v := SessionView{ActiveRole: RoleJobSeeker}
	if u.state.CurrentUser != nil {
		p := u.state.CurrentUser.Clone()
		v.JobSeeker = &p
	}
	if u.state.CurrentCompany != nil {
		c := *u.state.CurrentCompany
		v.Company = &c
		v.ActiveRole = RoleCompany
	}
	return v
}

// Snapshot returns a deep copy of the current state.
func (u *Portal) Snapshot() portal.State {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.state.Clone()
}

// commit persists the whole state. On failure the in-memory state is rolled
// back to prev so memory and store stay aligned.
func (u *Portal) commit(ctx context.Context, prev portal.State) error {
	if err := u.store.Save(ctx, u.state); err != nil {
		u.state = prev
		u.logger.Error("save portal state failed", zap.Error(err))
		return fmt.Errorf("save portal state: %w", err)
	}
	return nil
}

func (u *Portal) notify(message string) {
	if u.notifier == nil {
		return
	}
	u.notifier.Show(message, notify.KindSuccess)
}
