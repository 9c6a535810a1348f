package controllers

import (
	"github.com/shashiranjanraj/bizdesk/app/services"
	"github.com/shashiranjanraj/bizdesk/pkg/ctx"
)

// IntegrationController serves the settings page: /api/integrations and
// /api/settings/api-key.
type IntegrationController struct {
	integrations *services.IntegrationService
}

func NewIntegrationController(integrations *services.IntegrationService) *IntegrationController {
	return &IntegrationController{integrations: integrations}
}

func (ic *IntegrationController) Index(c *ctx.Context) {
	all, err := ic.integrations.List()
	if err != nil {
		respondErr(c, err)
		return
	}
	c.Success(all)
}

func (ic *IntegrationController) ShowAPIKey(c *ctx.Context) {
	key, err := ic.integrations.APIKey()
	if err != nil {
		respondErr(c, err)
		return
	}
	c.Success(map[string]any{"apiKey": key})
}

func (ic *IntegrationController) StoreAPIKey(c *ctx.Context) {
	var in struct {
		APIKey string `json:"apiKey" validate:"nullable,max=512"`
	}
	if !c.BindJSON(&in) {
		return
	}
	if err := ic.integrations.SetAPIKey(in.APIKey); err != nil {
		respondErr(c, err)
		return
	}
	c.Success(map[string]any{"saved": true})
}
