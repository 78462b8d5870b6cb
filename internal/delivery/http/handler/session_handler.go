package handler

import (
	"job-portal/internal/delivery/http/dto"
	"job-portal/internal/pkg/response"
	"job-portal/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type SessionHandler struct {
	uc usecase.SessionUsecase
}

func NewSessionHandler(uc usecase.SessionUsecase) *SessionHandler {
	return &SessionHandler{uc: uc}
}

func (h *SessionHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/session", h.GetSession)
}

// GetSession tells the client which view to open. A company session wins when both exist.
func (h *SessionHandler) GetSession(c fiber.Ctx) error {
	view := h.uc.Session(c.Context())

	out := dto.SessionResponse{ActiveRole: view.ActiveRole}
	if view.JobSeeker != nil {
		js := dto.NewJobSeekerResponse(*view.JobSeeker)
		out.JobSeeker = &js
	}
	if view.Company != nil {
		co := dto.NewCompanyResponse(*view.Company)
		out.Company = &co
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}
