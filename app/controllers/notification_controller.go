package controllers

import (
	"github.com/shashiranjanraj/bizdesk/app/services"
	"github.com/shashiranjanraj/bizdesk/pkg/ctx"
)

// NotificationController serves the header bell: /api/notifications.
type NotificationController struct {
	notifications *services.NotificationService
}

func NewNotificationController(notifications *services.NotificationService) *NotificationController {
	return &NotificationController{notifications: notifications}
}

func (nc *NotificationController) Index(c *ctx.Context) {
	all, err := nc.notifications.List()
	if err != nil {
		respondErr(c, err)
		return
	}
	c.Success(all)
}

// Clear empties the feed (the bell's "clear all").
func (nc *NotificationController) Clear(c *ctx.Context) {
	if err := nc.notifications.Clear(); err != nil {
		respondErr(c, err)
		return
	}
	c.Success(map[string]any{"cleared": true})
}
