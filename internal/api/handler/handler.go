package handler

import (
	"impulsa/backend/internal/connection"
	"impulsa/backend/internal/directory"
	"impulsa/backend/internal/localization"
	"impulsa/backend/internal/messaging"
	"impulsa/backend/internal/notification"
)

// Handler holds the services behind the HTTP surface.
type Handler struct {
	Connections   *connection.Service
	Messaging     *messaging.Service
	Notifications *notification.View
	Directory     *directory.Service
	Localizer     *localization.Localizer
}

func NewHandler(
	connections *connection.Service,
	msging *messaging.Service,
	notifications *notification.View,
	dir *directory.Service,
	localizer *localization.Localizer,
) *Handler {
	return &Handler{
		Connections:   connections,
		Messaging:     msging,
		Notifications: notifications,
		Directory:     dir,
		Localizer:     localizer,
	}
}
