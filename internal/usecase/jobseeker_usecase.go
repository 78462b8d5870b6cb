package usecase

import (
	"context"
	"fmt"
	"strings"

	"job-portal/internal/domain/invitation"
	"job-portal/internal/domain/jobseeker"

	"go.uber.org/zap"
)

// ProfileInput carries the registration and edit form. Skills is the raw comma separated list.
type ProfileInput struct {
	FullName   string
	Email      string
	Phone      string
	Location   string
	Skills     string
	Experience jobseeker.Experience
	JobType    jobseeker.JobType
	About      string
}

func (in ProfileInput) normalize() ProfileInput {
	in.FullName = strings.TrimSpace(in.FullName)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Location = strings.TrimSpace(in.Location)
	in.About = strings.TrimSpace(in.About)
	return in
}

func (in ProfileInput) validate() error {
	return requireFields(
		field{"fullName", in.FullName},
		field{"email", in.Email},
		field{"phone", in.Phone},
		field{"location", in.Location},
		field{"experience", string(in.Experience)},
		field{"jobType", string(in.JobType)},
	)
}

func (in ProfileInput) apply(p *jobseeker.Profile) {
	p.FullName = in.FullName
	p.Email = in.Email
	p.Phone = in.Phone
	p.Location = in.Location
	p.Skills = jobseeker.ParseSkills(in.Skills)
	p.Experience = in.Experience
	p.JobType = in.JobType
	p.About = in.About
}

type JobSeekerUsecase interface {
	Register(ctx context.Context, in ProfileInput) (jobseeker.Profile, error)
	Login(ctx context.Context, email string) (jobseeker.Profile, error)
	CurrentJobSeeker(ctx context.Context) (jobseeker.Profile, error)
	BeginEdit(ctx context.Context) (ProfileInput, error)
	SaveEdit(ctx context.Context, in ProfileInput) (jobseeker.Profile, error)
	Logout(ctx context.Context) error
	MyInvitations(ctx context.Context) ([]invitation.Invitation, error)
}

func (u *Portal) Register(ctx context.Context, in ProfileInput) (jobseeker.Profile, error) {
	in = in.normalize()
	if err := in.validate(); err != nil {
		return jobseeker.Profile{}, err
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	if _, exists := u.state.JobSeekerByEmail(in.Email); exists {
		return jobseeker.Profile{}, ErrEmailAlreadyRegistered
	}

	p := jobseeker.Profile{
		ID:             u.newID(),
		RegisteredDate: u.clock.Now(),
	}
	in.apply(&p)

	prev := u.state.Clone()
	u.state.JobSeekers = append(u.state.JobSeekers, p)
	session := p.Clone()
	u.state.CurrentUser = &session
	if err := u.commit(ctx, prev); err != nil {
		return jobseeker.Profile{}, err
	}

	u.logger.Info("job seeker registered", zap.String("job_seeker_id", p.ID))
	u.notify("Registration successful! Welcome to JobPortal.")
	return p.Clone(), nil
}

func (u *Portal) Login(ctx context.Context, email string) (jobseeker.Profile, error) {
	if strings.TrimSpace(email) == "" {
		return jobseeker.Profile{}, fmt.Errorf("%w: missing email", ErrInvalidInput)
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	p, ok := u.state.JobSeekerByEmail(email)
	if !ok {
		return jobseeker.Profile{}, ErrEmailNotFound
	}

	prev := u.state.Clone()
	session := p.Clone()
	u.state.CurrentUser = &session
	if err := u.commit(ctx, prev); err != nil {
		return jobseeker.Profile{}, err
	}

	u.notify("Welcome back, " + p.FullName + "!")
	return p.Clone(), nil
}

func (u *Portal) CurrentJobSeeker(_ context.Context) (jobseeker.Profile, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.state.CurrentUser == nil {
		return jobseeker.Profile{}, ErrNoJobSeekerSession
	}
	return u.state.CurrentUser.Clone(), nil
}

// BeginEdit returns the edit form pre-filled from the signed-in profile.
func (u *Portal) BeginEdit(_ context.Context) (ProfileInput, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	cur := u.state.CurrentUser
	if cur == nil {
		return ProfileInput{}, ErrNoJobSeekerSession
	}
	return ProfileInput{
		FullName:   cur.FullName,
		Email:      cur.Email,
		Phone:      cur.Phone,
		Location:   cur.Location,
		Skills:     jobseeker.JoinSkills(cur.Skills),
		Experience: cur.Experience,
		JobType:    cur.JobType,
		About:      cur.About,
	}, nil
}

// SaveEdit overwrites the signed-in profile and its collection entry. The id and
// registration date are kept; email uniqueness is not checked again.
func (u *Portal) SaveEdit(ctx context.Context, in ProfileInput) (jobseeker.Profile, error) {
	in = in.normalize()
	if err := in.validate(); err != nil {
		return jobseeker.Profile{}, err
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	if u.state.CurrentUser == nil {
		return jobseeker.Profile{}, ErrNoJobSeekerSession
	}

	prev := u.state.Clone()
	in.apply(u.state.CurrentUser)
	updated := u.state.CurrentUser.Clone()
	if i := u.state.JobSeekerIndex(updated.ID); i >= 0 {
		u.state.JobSeekers[i] = updated.Clone()
	} else {
		u.logger.Warn("edited profile missing from collection", zap.String("job_seeker_id", updated.ID))
	}
	if err := u.commit(ctx, prev); err != nil {
		return jobseeker.Profile{}, err
	}

	u.notify("Profile updated successfully!")
	return updated, nil
}

// Logout clears the job seeker session and its stored record. Profiles are kept.
func (u *Portal) Logout(ctx context.Context) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	prev := u.state.CurrentUser
	u.state.CurrentUser = nil
	if err := u.store.ClearCurrentUser(ctx); err != nil {
		u.state.CurrentUser = prev
		return fmt.Errorf("clear job seeker session: %w", err)
	}

	u.notify("Logged out successfully!")
	return nil
}

// MyInvitations lists invitations for the signed-in job seeker in the order they were sent.
func (u *Portal) MyInvitations(_ context.Context) ([]invitation.Invitation, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.state.CurrentUser == nil {
		return nil, ErrNoJobSeekerSession
	}
	return invitation.ForJobSeeker(u.state.Invitations, u.state.CurrentUser.ID), nil
}
