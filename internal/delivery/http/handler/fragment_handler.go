package handler

import (
	"job-portal/internal/delivery/http/middleware"
	"job-portal/internal/pkg/response"
	"job-portal/internal/render"
	"job-portal/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// FragmentHandler serves the HTML views a browser client swaps into the page.
type FragmentHandler struct {
	seekers   usecase.JobSeekerUsecase
	companies usecase.CompanyUsecase
	renderer  render.Renderer
}

func NewFragmentHandler(seekers usecase.JobSeekerUsecase, companies usecase.CompanyUsecase, renderer render.Renderer) *FragmentHandler {
	return &FragmentHandler{seekers: seekers, companies: companies, renderer: renderer}
}

// RegisterRoutes mounts the fragments. Each one sits behind the session guard of the role it renders for.
func (h *FragmentHandler) RegisterRoutes(r fiber.Router, requireCompany, requireJobSeeker fiber.Handler) {
	if r == nil {
		return
	}

	r.Get("/candidates", requireCompany, h.CandidateGrid)
	r.Get("/candidates/:id", requireCompany, h.CandidateDetail)
	r.Get("/dashboard/company", requireCompany, h.CompanyDashboard)

	r.Get("/invitations", requireJobSeeker, h.InvitationList)
	r.Get("/dashboard/job-seeker", requireJobSeeker, h.JobSeekerDashboard)
}

func (h *FragmentHandler) html(c fiber.Ctx, body string, err error) error {
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	return response.HTML(c, fiber.StatusOK, body)
}

func (h *FragmentHandler) CandidateGrid(c fiber.Ctx) error {
	list, err := h.companies.Candidates(c.Context(), criteriaFromQuery(c))
	if err != nil {
		return mapUsecaseError(err)
	}
	out, err := h.renderer.CandidateGrid(list)
	return h.html(c, out, err)
}

func (h *FragmentHandler) CandidateDetail(c fiber.Ctx) error {
	p, err := h.companies.Candidate(c.Context(), c.Params("id"))
	if err != nil {
		return mapUsecaseError(err)
	}
	out, err := h.renderer.ProfileDetail(p)
	return h.html(c, out, err)
}

func (h *FragmentHandler) CompanyDashboard(c fiber.Ctx) error {
	co, err := h.companies.CurrentCompany(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	list, err := h.companies.Candidates(c.Context(), criteriaFromQuery(c))
	if err != nil {
		return mapUsecaseError(err)
	}
	out, err := h.renderer.CompanyDashboard(co, list)
	return h.html(c, out, err)
}

func (h *FragmentHandler) InvitationList(c fiber.Ctx) error {
	invs, err := h.seekers.MyInvitations(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	out, err := h.renderer.InvitationList(invs)
	return h.html(c, out, err)
}

func (h *FragmentHandler) JobSeekerDashboard(c fiber.Ctx) error {
	p, err := h.seekers.CurrentJobSeeker(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	invs, err := h.seekers.MyInvitations(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	out, err := h.renderer.JobSeekerDashboard(p, invs)
	return h.html(c, out, err)
}
