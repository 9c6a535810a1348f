// Package listeners connects store events to their side effects: the
// notification feed, the websocket hub, and webhook delivery.
package listeners

import (
	"encoding/json"
	"fmt"

	"github.com/shashiranjanraj/bizdesk/app/jobs"
	"github.com/shashiranjanraj/bizdesk/app/models"
	alerts "github.com/shashiranjanraj/bizdesk/app/notifications"
	"github.com/shashiranjanraj/bizdesk/app/services"
	"github.com/shashiranjanraj/bizdesk/config"
	"github.com/shashiranjanraj/bizdesk/pkg/event"
	"github.com/shashiranjanraj/bizdesk/pkg/logger"
	"github.com/shashiranjanraj/bizdesk/pkg/notification"
	"github.com/shashiranjanraj/bizdesk/pkg/queue"
	"github.com/shashiranjanraj/bizdesk/pkg/ws"
)

// Register wires every listener. hub may be nil (CLI runs without a server).
func Register(notifications *services.NotificationService, hub *ws.Hub) {
	event.Listen("order.created", func(payload any) {
		o, ok := payload.(*models.Order)
		if !ok {
			return
		}
		addNotification(notifications, models.NotificationOrder,
			fmt.Sprintf("New order #%d from %s (%.2f)", o.ID, o.CustomerName, o.TotalAmount))
		broadcast(hub, "order.created", o)
		dispatchWebhook("order.created", o)
		sendAlert(alerts.NewOrderPlacedAlert(o))
	})

	event.Listen("inventory.low_stock", func(payload any) {
		p, ok := payload.(*models.Product)
		if !ok {
			return
		}
		addNotification(notifications, models.NotificationLowStock,
			fmt.Sprintf("%s is low on stock (%d left, reorder at %d)", p.Name, p.Quantity, p.ReorderPoint))
		broadcast(hub, "inventory.low_stock", p)
		dispatchWebhook("inventory.low_stock", p)
		sendAlert(alerts.NewLowStockAlert(p))
	})

	// The remaining mutations only feed the live dashboard.
	for _, name := range []string{
		"product.created", "product.updated", "product.deleted",
		"order.updated", "order.deleted",
		"invoice.created", "invoice.updated", "invoice.deleted",
		"user.created", "user.updated", "user.deleted",
	} {
		name := name
		event.Listen(name, func(payload any) {
			broadcast(hub, name, payload)
		})
	}
}

func addNotification(svc *services.NotificationService, kind, message string) {
	if _, err := svc.Add(kind, message); err != nil {
		logger.Error("listeners: add notification", "error", err)
	}
}

func broadcast(hub *ws.Hub, name string, data any) {
	if hub == nil {
		return
	}
	msg, err := json.Marshal(map[string]any{"event": name, "data": data})
	if err != nil {
		return
	}
	select {
	case hub.Broadcast <- msg:
	default:
		// Hub buffer full; the next event will carry fresher state anyway.
	}
}

// sendAlert pushes an operator alert through whatever channels are
// configured. No channels means the alert is dropped silently.
func sendAlert(n notification.Notification) {
	if len(n.Via()) == 0 {
		return
	}
	notification.SendAsync(config.AlertEmail(), n)
}

func dispatchWebhook(name string, payload any) {
	if err := queue.Dispatch(&jobs.WebhookJob{Event: name, Payload: payload}); err != nil {
		logger.Error("listeners: dispatch webhook", "event", name, "error", err)
	}
}
