package dto

import "job-portal/internal/domain/company"

type CompanyLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CompanyResponse never carries the password.
type CompanyResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func NewCompanyResponse(c company.Company) CompanyResponse {
	return CompanyResponse{Name: c.Name, Email: c.Email}
}

type SessionResponse struct {
	ActiveRole string             `json:"active_role"`
	JobSeeker  *JobSeekerResponse `json:"job_seeker"`
	Company    *CompanyResponse   `json:"company"`
}
