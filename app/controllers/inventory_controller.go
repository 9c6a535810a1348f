package controllers

import (
	"github.com/shashiranjanraj/bizdesk/app/models"
	"github.com/shashiranjanraj/bizdesk/app/services"
	"github.com/shashiranjanraj/bizdesk/pkg/ctx"
)

// InventoryController serves /api/inventory.
type InventoryController struct {
	inventory *services.InventoryService
}

func NewInventoryController(inventory *services.InventoryService) *InventoryController {
	return &InventoryController{inventory: inventory}
}

// Index lists the catalog, filtered by ?q= when present.
func (ic *InventoryController) Index(c *ctx.Context) {
	products, err := ic.inventory.List(c.Query("q"))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.Success(products)
}

func (ic *InventoryController) Show(c *ctx.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	p, err := ic.inventory.Get(id)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.Success(p)
}

func (ic *InventoryController) Store(c *ctx.Context) {
	var p models.Product
	if !c.BindJSON(&p) {
		return
	}
	created, err := ic.inventory.Create(&p)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.Created(created)
}

func (ic *InventoryController) Update(c *ctx.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var p models.Product
	if !c.BindJSON(&p) {
		return
	}
	updated, err := ic.inventory.Update(id, &p)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.Success(updated)
}

func (ic *InventoryController) Destroy(c *ctx.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := ic.inventory.Delete(id); err != nil {
		respondErr(c, err)
		return
	}
	c.Success(map[string]any{"deleted": id})
}
