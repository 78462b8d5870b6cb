package routes

import (
	"job-portal/internal/delivery/http/handler"
	"job-portal/internal/delivery/http/middleware"

	"github.com/gofiber/fiber/v3"
)

type Handlers struct {
	Health       *handler.HealthHandler
	Session      *handler.SessionHandler
	JobSeeker    *handler.JobSeekerHandler
	Company      *handler.CompanyHandler
	Notification *handler.NotificationHandler
	Fragment     *handler.FragmentHandler
}

type Registry struct {
	handlers Handlers
	sessions *middleware.SessionMiddleware
}

func NewRegistry(h Handlers, sessions *middleware.SessionMiddleware) *Registry {
	if h.Health == nil {
		h.Health = handler.NewHealthHandler()
	}
	return &Registry{handlers: h, sessions: sessions}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.registerHealth(app)
	r.registerAPI(app)
	r.registerFragments(app)
}

func (r *Registry) registerHealth(app *fiber.App) {
	r.handlers.Health.RegisterRoutes(app)
}

func (r *Registry) registerAPI(app *fiber.App) {
	api := app.Group("/api")
	RegisterV1(api.Group("/v1"), r.handlers, r.sessions)
}

func (r *Registry) registerFragments(app *fiber.App) {
	if r.handlers.Fragment == nil {
		return
	}

	r.handlers.Fragment.RegisterRoutes(app.Group("/fragments"), r.sessions.RequireCompany(), r.sessions.RequireJobSeeker())
}
