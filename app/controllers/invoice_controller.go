package controllers

import (
	"github.com/shashiranjanraj/bizdesk/app/models"
	"github.com/shashiranjanraj/bizdesk/app/services"
	"github.com/shashiranjanraj/bizdesk/pkg/ctx"
)

// InvoiceController serves /api/invoices.
type InvoiceController struct {
	invoices *services.InvoiceService
}

func NewInvoiceController(invoices *services.InvoiceService) *InvoiceController {
	return &InvoiceController{invoices: invoices}
}

func (vc *InvoiceController) Index(c *ctx.Context) {
	invoices, err := vc.invoices.List()
	if err != nil {
		respondErr(c, err)
		return
	}
	c.Success(invoices)
}

func (vc *InvoiceController) Show(c *ctx.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	inv, err := vc.invoices.Get(id)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.Success(inv)
}

func (vc *InvoiceController) Store(c *ctx.Context) {
	var inv models.Invoice
	if !c.BindJSON(&inv) {
		return
	}
	created, err := vc.invoices.Create(&inv)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.Created(created)
}

func (vc *InvoiceController) Update(c *ctx.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var inv models.Invoice
	if !c.BindJSON(&inv) {
		return
	}
	updated, err := vc.invoices.Update(id, &inv)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.Success(updated)
}

func (vc *InvoiceController) Destroy(c *ctx.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := vc.invoices.Delete(id); err != nil {
		respondErr(c, err)
		return
	}
	c.Success(map[string]any{"deleted": id})
}
