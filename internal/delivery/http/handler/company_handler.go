package handler

import (
	"job-portal/internal/delivery/http/dto"
	"job-portal/internal/domain/jobseeker"
	"job-portal/internal/pkg/response"
	"job-portal/internal/search"
	"job-portal/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type CompanyHandler struct {
	uc usecase.CompanyUsecase
}

func NewCompanyHandler(uc usecase.CompanyUsecase) *CompanyHandler {
	return &CompanyHandler{uc: uc}
}

func (h *CompanyHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/login", h.Login)
	r.Post("/logout", h.Logout)
	r.Get("/me", h.GetMe)
}

// RegisterCandidateRoutes mounts the candidate browsing routes. The caller guards r with a company session.
func (h *CompanyHandler) RegisterCandidateRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.ListCandidates)
	r.Get("/:id", h.GetCandidate)
	r.Post("/:id/invitations", h.SendInvitation)
}

func (h *CompanyHandler) Login(c fiber.Ctx) error {
	var req dto.CompanyLoginRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(err)
	}

	co, err := h.uc.CompanyLogin(c.Context(), req.Email, req.Password)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewCompanyResponse(co))
}

func (h *CompanyHandler) Logout(c fiber.Ctx) error {
	if err := h.uc.CompanyLogout(c.Context()); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Logged out", nil)
}

func (h *CompanyHandler) GetMe(c fiber.Ctx) error {
	co, err := h.uc.CurrentCompany(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewCompanyResponse(co))
}

func criteriaFromQuery(c fiber.Ctx) search.Criteria {
	return search.Criteria{
		Search:     c.Query("search"),
		Experience: jobseeker.Experience(c.Query("experience")),
		JobType:    jobseeker.JobType(c.Query("job_type")),
	}
}

func (h *CompanyHandler) ListCandidates(c fiber.Ctx) error {
	list, err := h.uc.Candidates(c.Context(), criteriaFromQuery(c))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewJobSeekerResponses(list))
}

func (h *CompanyHandler) GetCandidate(c fiber.Ctx) error {
	p, err := h.uc.Candidate(c.Context(), c.Params("id"))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewJobSeekerResponse(p))
}

func (h *CompanyHandler) SendInvitation(c fiber.Ctx) error {
	var req dto.InvitationRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(err)
	}

	inv, err := h.uc.SendInvitation(c.Context(), c.Params("id"), usecase.InvitationInput{
		Role:     req.Role,
		Location: req.Location,
		JobType:  jobseeker.JobType(req.JobType),
		Message:  req.Message,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, "Invitation sent", dto.NewInvitationResponse(inv))
}
