package dto

import (
	"time"

	"job-portal/internal/domain/jobseeker"
)

type ProfileRequest struct {
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Location   string `json:"location"`
	Skills     string `json:"skills"`
	Experience string `json:"experience"`
	JobType    string `json:"job_type"`
	About      string `json:"about"`
}

type JobSeekerLoginRequest struct {
	Email string `json:"email"`
}

type JobSeekerResponse struct {
	ID             string    `json:"id"`
	FullName       string    `json:"full_name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	Location       string    `json:"location"`
	Skills         []string  `json:"skills"`
	Experience     string    `json:"experience"`
	JobType        string    `json:"job_type"`
	About          string    `json:"about"`
	RegisteredDate time.Time `json:"registered_date"`
}

func NewJobSeekerResponse(p jobseeker.Profile) JobSeekerResponse {
	skills := p.Skills
	if skills == nil {
		skills = []string{}
	}
	return JobSeekerResponse{
		ID:             p.ID,
		FullName:       p.FullName,
		Email:          p.Email,
		Phone:          p.Phone,
		Location:       p.Location,
		Skills:         skills,
		Experience:     string(p.Experience),
		JobType:        string(p.JobType),
		About:          p.About,
		RegisteredDate: p.RegisteredDate,
	}
}

func NewJobSeekerResponses(ps []jobseeker.Profile) []JobSeekerResponse {
	out := make([]JobSeekerResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, NewJobSeekerResponse(p))
	}
	return out
}

// EditFormResponse is the pre-filled edit form; skills are joined back into one string.
type EditFormResponse struct {
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Location   string `json:"location"`
	Skills     string `json:"skills"`
	Experience string `json:"experience"`
	JobType    string `json:"job_type"`
	About      string `json:"about"`
}
