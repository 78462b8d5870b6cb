package dto

import (
	"time"

	"job-portal/internal/notify"
)

type NotificationResponse struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	Kind      string    `json:"kind"`
	ShownAt   time.Time `json:"shown_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

func NewNotificationResponses(ns []notify.Notification) []NotificationResponse {
	out := make([]NotificationResponse, 0, len(ns))
	for _, n := range ns {
		out = append(out, NotificationResponse{
			ID:        n.ID,
			Message:   n.Message,
			Kind:      string(n.Kind),
			ShownAt:   n.ShownAt,
			ExpiresAt: n.ExpiresAt,
		})
	}
	return out
}
