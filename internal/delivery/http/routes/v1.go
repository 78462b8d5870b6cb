package routes

import (
	"job-portal/internal/delivery/http/middleware"

	"github.com/gofiber/fiber/v3"
)

func RegisterV1(r fiber.Router, h Handlers, sessions *middleware.SessionMiddleware) {
	if r == nil {
		return
	}

	if h.Session != nil {
		h.Session.RegisterRoutes(r)
	}
	if h.JobSeeker != nil {
		h.JobSeeker.RegisterRoutes(r.Group("/job-seekers"))
	}
	if h.Company != nil {
		h.Company.RegisterRoutes(r.Group("/companies"))
		h.Company.RegisterCandidateRoutes(r.Group("/candidates", sessions.RequireCompany()))
	}
	if h.Notification != nil {
		h.Notification.RegisterRoutes(r.Group("/notifications"))
	}
}
