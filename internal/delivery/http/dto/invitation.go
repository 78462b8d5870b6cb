package dto

import (
	"time"

	"job-portal/internal/domain/invitation"
)

type InvitationRequest struct {
	Role     string `json:"role"`
	Location string `json:"location"`
	JobType  string `json:"job_type"`
	Message  string `json:"message"`
}

type InvitationResponse struct {
	ID           string    `json:"id"`
	JobSeekerID  string    `json:"job_seeker_id"`
	CompanyName  string    `json:"company_name"`
	CompanyEmail string    `json:"company_email"`
	Role         string    `json:"role"`
	Location     string    `json:"location"`
	JobType      string    `json:"job_type"`
	Message      string    `json:"message"`
	Date         time.Time `json:"date"`
}

func NewInvitationResponse(inv invitation.Invitation) InvitationResponse {
	return InvitationResponse{
		ID:           inv.ID,
		JobSeekerID:  inv.JobSeekerID,
		CompanyName:  inv.CompanyName,
		CompanyEmail: inv.CompanyEmail,
		Role:         inv.Role,
		Location:     inv.Location,
		JobType:      string(inv.JobType),
		Message:      inv.Message,
		Date:         inv.Date,
	}
}

func NewInvitationResponses(invs []invitation.Invitation) []InvitationResponse {
	out := make([]InvitationResponse, 0, len(invs))
	for _, inv := range invs {
		out = append(out, NewInvitationResponse(inv))
	}
	return out
}
