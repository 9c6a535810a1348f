package controllers

import (
	"github.com/shashiranjanraj/bizdesk/app/services"
	"github.com/shashiranjanraj/bizdesk/pkg/ctx"
)

// ReportController serves /api/reports and /api/dashboard.
type ReportController struct {
	reports *services.ReportService
}

func NewReportController(reports *services.ReportService) *ReportController {
	return &ReportController{reports: reports}
}

func (rc *ReportController) Dashboard(c *ctx.Context) {
	summary, err := rc.reports.Dashboard()
	if err != nil {
		respondErr(c, err)
		return
	}
	c.Success(summary)
}

func (rc *ReportController) Sales(c *ctx.Context) {
	sales, err := rc.reports.Sales()
	if err != nil {
		respondErr(c, err)
		return
	}
	c.Success(sales)
}

// Alerts lists low-stock alerts. ?refresh=true rebuilds the collection from
// the current catalog first.
func (rc *ReportController) Alerts(c *ctx.Context) {
	if c.Query("refresh") == "true" {
		if err := rc.reports.SyncAlerts(); err != nil {
			respondErr(c, err)
			return
		}
	}
	alerts, err := rc.reports.Alerts()
	if err != nil {
		respondErr(c, err)
		return
	}
	c.Success(alerts)
}

func (rc *ReportController) OrderStats(c *ctx.Context) {
	stats, err := rc.reports.OrderStats()
	if err != nil {
		respondErr(c, err)
		return
	}
	c.Success(stats)
}
