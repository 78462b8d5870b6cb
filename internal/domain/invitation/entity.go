package invitation

import (
	"time"

	"job-portal/internal/domain/jobseeker"
)

// Invitation is a one-way message from a company to a job seeker. It is
// immutable once created.
type Invitation struct {
	ID           string            `json:"id"`
	JobSeekerID  string            `json:"jobSeekerId"`
	CompanyName  string            `json:"companyName"`
	CompanyEmail string            `json:"companyEmail"`
	Role         string            `json:"role"`
	Location     string            `json:"location"`
	JobType      jobseeker.JobType `json:"jobType"`
	Message      string            `json:"message"`
	Date         time.Time         `json:"date"`
}

// ForJobSeeker returns the invitations addressed to jobSeekerID, in input order.
func ForJobSeeker(all []Invitation, jobSeekerID string) []Invitation {
	out := make([]Invitation, 0)
	for _, inv := range all {
		if inv.JobSeekerID == jobSeekerID {
			out = append(out, inv)
		}
	}
	return out
}
