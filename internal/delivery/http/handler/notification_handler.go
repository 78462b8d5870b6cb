package handler

import (
	"job-portal/internal/delivery/http/dto"
	"job-portal/internal/delivery/http/middleware"
	"job-portal/internal/notify"
	"job-portal/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type NotificationCenter interface {
	Active() []notify.Notification
	Dismiss(id string) bool
}

type NotificationHandler struct {
	center NotificationCenter
}

func NewNotificationHandler(center NotificationCenter) *NotificationHandler {
	return &NotificationHandler{center: center}
}

func (h *NotificationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.List)
	r.Delete("/:id", h.Dismiss)
}

func (h *NotificationHandler) List(c fiber.Ctx) error {
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewNotificationResponses(h.center.Active()))
}

func (h *NotificationHandler) Dismiss(c fiber.Ctx) error {
	if !h.center.Dismiss(c.Params("id")) {
		return middleware.NewAppError(fiber.StatusNotFound, "Notification not found", nil, nil)
	}
	return response.Success(c, fiber.StatusOK, "Dismissed", nil)
}
