package usecase

import (
	"context"
	"fmt"
	"strings"

	"job-portal/internal/domain/company"
	"job-portal/internal/domain/invitation"
	"job-portal/internal/domain/jobseeker"
	"job-portal/internal/search"

	"go.uber.org/zap"
)

type InvitationInput struct {
	Role     string
	Location string
	JobType  jobseeker.JobType
	Message  string
}

type CompanyUsecase interface {
	CompanyLogin(ctx context.Context, email, password string) (company.Company, error)
	CompanyLogout(ctx context.Context) error
	CurrentCompany(ctx context.Context) (company.Company, error)
	Candidates(ctx context.Context, c search.Criteria) ([]jobseeker.Profile, error)
	Candidate(ctx context.Context, id string) (jobseeker.Profile, error)
	SendInvitation(ctx context.Context, candidateID string, in InvitationInput) (invitation.Invitation, error)
}

func (u *Portal) CompanyLogin(ctx context.Context, email, password string) (company.Company, error) {
	email = strings.TrimSpace(email)

	u.mu.Lock()
	defer u.mu.Unlock()

	c, ok := company.Authenticate(u.companies, email, password)
	if !ok {
		return company.Company{}, ErrInvalidCredentials
	}

	prev := u.state.Clone()
	session := c
	u.state.CurrentCompany = &session
	if err := u.commit(ctx, prev); err != nil {
		return company.Company{}, err
	}

	u.notify("Welcome, " + c.Name + "!")
	return c, nil
}

func (u *Portal) CompanyLogout(ctx context.Context) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	prev := u.state.CurrentCompany
	u.state.CurrentCompany = nil
	if err := u.store.ClearCurrentCompany(ctx); err != nil {
		u.state.CurrentCompany = prev
		return fmt.Errorf("clear company session: %w", err)
	}

	u.notify("Logged out successfully!")
	return nil
}

func (u *Portal) CurrentCompany(_ context.Context) (company.Company, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.state.CurrentCompany == nil {
		return company.Company{}, ErrNoCompanySession
	}
	return *u.state.CurrentCompany, nil
}

func (u *Portal) Candidates(_ context.Context, c search.Criteria) ([]jobseeker.Profile, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.state.CurrentCompany == nil {
		return nil, ErrNoCompanySession
	}
	return search.FilterCandidates(u.state.JobSeekers, c), nil
}

func (u *Portal) Candidate(_ context.Context, id string) (jobseeker.Profile, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.state.CurrentCompany == nil {
		return jobseeker.Profile{}, ErrNoCompanySession
	}
	p, ok := u.state.JobSeekerByID(id)
	if !ok {
		return jobseeker.Profile{}, ErrCandidateNotFound
	}
	return p.Clone(), nil
}

// SendInvitation appends an invitation from the signed-in company to candidateID.
func (u *Portal) SendInvitation(ctx context.Context, candidateID string, in InvitationInput) (invitation.Invitation, error) {
	in.Role = strings.TrimSpace(in.Role)
	in.Location = strings.TrimSpace(in.Location)
	in.Message = strings.TrimSpace(in.Message)
	if err := requireFields(
		field{"role", in.Role},
		field{"location", in.Location},
		field{"jobType", string(in.JobType)},
		field{"message", in.Message},
	); err != nil {
		return invitation.Invitation{}, err
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	if u.state.CurrentCompany == nil {
		return invitation.Invitation{}, ErrNoCompanySession
	}
	candidate, ok := u.state.JobSeekerByID(candidateID)
	if !ok {
		return invitation.Invitation{}, ErrCandidateNotFound
	}

	inv := invitation.Invitation{
		ID:           u.newID(),
		JobSeekerID:  candidate.ID,
		CompanyName:  u.state.CurrentCompany.Name,
		CompanyEmail: u.state.CurrentCompany.Email,
		Role:         in.Role,
		Location:     in.Location,
		JobType:      in.JobType,
		Message:      in.Message,
		Date:         u.clock.Now(),
	}

	prev := u.state.Clone()
	u.state.Invitations = append(u.state.Invitations, inv)
	if err := u.commit(ctx, prev); err != nil {
		return invitation.Invitation{}, err
	}

	u.logger.Info("invitation sent",
		zap.String("invitation_id", inv.ID),
		zap.String("job_seeker_id", inv.JobSeekerID),
		zap.String("company", inv.CompanyEmail),
	)
	u.notify("Invitation sent to " + candidate.FullName + "!")
	return inv, nil
}
