// Package notifications defines the operator-facing alerts that leave the
// process through pkg/notification channels (mail, Slack). The in-app bell
// feed is separate; it lives in the notifications collection.
package notifications

import (
	"fmt"

	"github.com/shashiranjanraj/bizdesk/app/models"
	"github.com/shashiranjanraj/bizdesk/config"
	"github.com/shashiranjanraj/bizdesk/pkg/notification"
)

// channels returns the channels enabled by configuration.
func channels() []string {
	var ch []string
	if config.AlertEmail() != "" {
		ch = append(ch, "mail")
	}
	if config.SlackWebhookURL() != "" {
		ch = append(ch, "slack")
	}
	return ch
}

// LowStockAlert tells the operator a product dropped to its reorder point.
type LowStockAlert struct {
	Product *models.Product
	via     []string
}

func NewLowStockAlert(p *models.Product) *LowStockAlert {
	return &LowStockAlert{Product: p, via: channels()}
}

func (n *LowStockAlert) Via() []string { return n.via }

func (n *LowStockAlert) ToMail() notification.MailData {
	return notification.MailData{
		Subject: fmt.Sprintf("Low stock: %s", n.Product.Name),
		Body: fmt.Sprintf("<p><strong>%s</strong> is down to %d units (reorder point %d).</p>",
			n.Product.Name, n.Product.Quantity, n.Product.ReorderPoint),
		Text: fmt.Sprintf("%s is down to %d units (reorder point %d).",
			n.Product.Name, n.Product.Quantity, n.Product.ReorderPoint),
	}
}

func (n *LowStockAlert) ToSlack() notification.SlackData {
	return notification.SlackData{
		Attachments: []notification.SlackAttachment{{
			Color: "warning",
			Title: fmt.Sprintf("Low stock: %s", n.Product.Name),
			Text: fmt.Sprintf("%d units left, reorder at %d",
				n.Product.Quantity, n.Product.ReorderPoint),
		}},
	}
}

// OrderPlacedAlert tells the operator a new order arrived.
type OrderPlacedAlert struct {
	Order *models.Order
	via   []string
}

func NewOrderPlacedAlert(o *models.Order) *OrderPlacedAlert {
	return &OrderPlacedAlert{Order: o, via: channels()}
}

func (n *OrderPlacedAlert) Via() []string { return n.via }

func (n *OrderPlacedAlert) ToMail() notification.MailData {
	return notification.MailData{
		Subject: fmt.Sprintf("New order #%d", n.Order.ID),
		Body: fmt.Sprintf("<p>Order #%d from %s for %.2f.</p>",
			n.Order.ID, n.Order.CustomerName, n.Order.TotalAmount),
		Text: fmt.Sprintf("Order #%d from %s for %.2f.",
			n.Order.ID, n.Order.CustomerName, n.Order.TotalAmount),
	}
}

func (n *OrderPlacedAlert) ToSlack() notification.SlackData {
	return notification.SlackData{
		Text: fmt.Sprintf("New order #%d from %s (%.2f)",
			n.Order.ID, n.Order.CustomerName, n.Order.TotalAmount),
	}
}
