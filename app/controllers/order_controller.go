package controllers

import (
	"github.com/shashiranjanraj/bizdesk/app/models"
	"github.com/shashiranjanraj/bizdesk/app/services"
	"github.com/shashiranjanraj/bizdesk/pkg/ctx"
)

// OrderController serves /api/orders.
type OrderController struct {
	orders *services.OrderService
}

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{orders: orders}
}

func (oc *OrderController) Index(c *ctx.Context) {
	orders, err := oc.orders.List()
	if err != nil {
		respondErr(c, err)
		return
	}
	c.Success(orders)
}

func (oc *OrderController) Show(c *ctx.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	o, err := oc.orders.Get(id)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.Success(o)
}

func (oc *OrderController) Store(c *ctx.Context) {
	var o models.Order
	if !c.BindJSON(&o) {
		return
	}
	created, err := oc.orders.Create(&o)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.Created(created)
}

func (oc *OrderController) Update(c *ctx.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var o models.Order
	if !c.BindJSON(&o) {
		return
	}
	updated, err := oc.orders.Update(id, &o)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.Success(updated)
}

func (oc *OrderController) Destroy(c *ctx.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := oc.orders.Delete(id); err != nil {
		respondErr(c, err)
		return
	}
	c.Success(map[string]any{"deleted": id})
}
