package middleware

import (
	"job-portal/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

const (
	CtxCompanyKey   = "company"
	CtxJobSeekerKey = "job_seeker"
)

// SessionMiddleware guards routes behind the process-wide portal session.
type SessionMiddleware struct {
	sessions usecase.SessionUsecase
}

func NewSessionMiddleware(sessions usecase.SessionUsecase) *SessionMiddleware {
	return &SessionMiddleware{sessions: sessions}
}

func (m *SessionMiddleware) RequireCompany() fiber.Handler {
	return func(c fiber.Ctx) error {
		view := m.sessions.Session(c.Context())
		if view.Company == nil {
			return NewAppError(fiber.StatusUnauthorized, "Company login required", nil, usecase.ErrNoCompanySession)
		}
		c.Locals(CtxCompanyKey, *view.Company)
		return c.Next()
	}
}

func (m *SessionMiddleware) RequireJobSeeker() fiber.Handler {
	return func(c fiber.Ctx) error {
		view := m.sessions.Session(c.Context())
		if view.JobSeeker == nil {
			return NewAppError(fiber.StatusUnauthorized, "Job seeker login required", nil, usecase.ErrNoJobSeekerSession)
		}
		c.Locals(CtxJobSeekerKey, *view.JobSeeker)
		return c.Next()
	}
}
