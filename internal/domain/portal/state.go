package portal

import (
	"job-portal/internal/domain/company"
	"job-portal/internal/domain/invitation"
	"job-portal/internal/domain/jobseeker"
)

// State is the in-memory mirror of the four persisted records.
type State struct {
	JobSeekers     []jobseeker.Profile
	Invitations    []invitation.Invitation
	CurrentUser    *jobseeker.Profile
	CurrentCompany *company.Company
}

func Empty() State {
	return State{
		JobSeekers:  []jobseeker.Profile{},
		Invitations: []invitation.Invitation{},
	}
}

// Clone returns a deep copy of s.
func (s State) Clone() State {
	out := State{
		JobSeekers:  make([]jobseeker.Profile, 0, len(s.JobSeekers)),
		Invitations: make([]invitation.Invitation, len(s.Invitations)),
	}
	for _, p := range s.JobSeekers {
		out.JobSeekers = append(out.JobSeekers, p.Clone())
	}
	copy(out.Invitations, s.Invitations)
	if s.CurrentUser != nil {
		u := s.CurrentUser.Clone()
		out.CurrentUser = &u
	}
	if s.CurrentCompany != nil {
		c := *s.CurrentCompany
		out.CurrentCompany = &c
	}
	return out
}

func (s State) JobSeekerIndex(id string) int {
	for i := range s.JobSeekers {
		if s.JobSeekers[i].ID == id {
			return i
		}
	}
	return -1
}

func (s State) JobSeekerByID(id string) (jobseeker.Profile, bool) {
	i := s.JobSeekerIndex(id)
	if i < 0 {
		return jobseeker.Profile{}, false
	}
	return s.JobSeekers[i], true
}

func (s State) JobSeekerByEmail(email string) (jobseeker.Profile, bool) {
	for _, p := range s.JobSeekers {
		if jobseeker.SameEmail(p.Email, email) {
			return p, true
		}
	}
	return jobseeker.Profile{}, false
}
