// Package jobs defines the background jobs BizDesk runs through pkg/queue:
// webhook delivery for store events and the sales rollup.
package jobs

import (
	"time"

	"github.com/shashiranjanraj/bizdesk/app/services"
	"github.com/shashiranjanraj/bizdesk/config"
	"github.com/shashiranjanraj/bizdesk/pkg/http"
	"github.com/shashiranjanraj/bizdesk/pkg/queue"
)

// reports is injected at boot; jobs are deserialized by the queue and cannot
// carry service references in their payload.
var reports *services.ReportService

// Configure injects the services jobs need. Call once at boot, before
// workers start.
func Configure(r *services.ReportService) { reports = r }

// Register makes every job type known to the queue so payloads can be
// deserialized by name.
func Register() {
	queue.Register("*jobs.WebhookJob", func() queue.Job { return &WebhookJob{} })
	queue.Register("*jobs.SalesRollupJob", func() queue.Job { return &SalesRollupJob{} })
}

// WebhookJob POSTs a store event to the configured webhook endpoint.
type WebhookJob struct {
	Event   string `json:"event"`
	Payload any    `json:"payload"`
}

func (j *WebhookJob) Handle() error {
	url := config.WebhookURL()
	if url == "" {
		return nil // delivery disabled
	}

	resp, err := http.Post(url).
		Body(map[string]any{"event": j.Event, "payload": j.Payload}).
		Timeout(10 * time.Second).
		Retry(3, time.Second).
		Send()
	if err != nil {
		return err
	}
	return resp.Throw()
}

// SalesRollupJob rebuilds the salesData series from orders.
type SalesRollupJob struct{}

func (*SalesRollupJob) Handle() error {
	if reports == nil {
		return nil
	}
	return reports.RollupSales()
}
