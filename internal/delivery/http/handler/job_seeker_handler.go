package handler

import (
	"job-portal/internal/delivery/http/dto"
	"job-portal/internal/domain/jobseeker"
	"job-portal/internal/pkg/response"
	"job-portal/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type JobSeekerHandler struct {
	uc usecase.JobSeekerUsecase
}

func NewJobSeekerHandler(uc usecase.JobSeekerUsecase) *JobSeekerHandler {
	return &JobSeekerHandler{uc: uc}
}

func (h *JobSeekerHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/", h.Register)
	r.Post("/login", h.Login)
	r.Post("/logout", h.Logout)
	r.Get("/me", h.GetMe)
	r.Get("/me/edit", h.GetEditForm)
	r.Put("/me", h.UpdateMe)
	r.Get("/me/invitations", h.ListInvitations)
}

func toProfileInput(req dto.ProfileRequest) usecase.ProfileInput {
	return usecase.ProfileInput{
		FullName:   req.FullName,
		Email:      req.Email,
		Phone:      req.Phone,
		Location:   req.Location,
		Skills:     req.Skills,
		Experience: jobseeker.Experience(req.Experience),
		JobType:    jobseeker.JobType(req.JobType),
		About:      req.About,
	}
}

func (h *JobSeekerHandler) Register(c fiber.Ctx) error {
	var req dto.ProfileRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(err)
	}

	p, err := h.uc.Register(c.Context(), toProfileInput(req))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, "Registration successful", dto.NewJobSeekerResponse(p))
}

func (h *JobSeekerHandler) Login(c fiber.Ctx) error {
	var req dto.JobSeekerLoginRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(err)
	}

	p, err := h.uc.Login(c.Context(), req.Email)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewJobSeekerResponse(p))
}

func (h *JobSeekerHandler) Logout(c fiber.Ctx) error {
	if err := h.uc.Logout(c.Context()); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Logged out", nil)
}

func (h *JobSeekerHandler) GetMe(c fiber.Ctx) error {
	p, err := h.uc.CurrentJobSeeker(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewJobSeekerResponse(p))
}

func (h *JobSeekerHandler) GetEditForm(c fiber.Ctx) error {
	in, err := h.uc.BeginEdit(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.EditFormResponse{
		FullName:   in.FullName,
		Email:      in.Email,
		Phone:      in.Phone,
		Location:   in.Location,
		Skills:     in.Skills,
		Experience: string(in.Experience),
		JobType:    string(in.JobType),
		About:      in.About,
	})
}

func (h *JobSeekerHandler) UpdateMe(c fiber.Ctx) error {
	var req dto.ProfileRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(err)
	}

	p, err := h.uc.SaveEdit(c.Context(), toProfileInput(req))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Profile updated", dto.NewJobSeekerResponse(p))
}

func (h *JobSeekerHandler) ListInvitations(c fiber.Ctx) error {
	invs, err := h.uc.MyInvitations(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewInvitationResponses(invs))
}
