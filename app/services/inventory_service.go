// Package services holds the business rules between controllers and
// repositories: catalog price snapshotting, low-stock detection, report
// aggregation, credential handling. Controllers stay thin; services fire the
// events the rest of the system (notifications, websocket, webhooks) listens
// to.
package services

import (
	"strings"

	"github.com/shashiranjanraj/bizdesk/app/models"
	"github.com/shashiranjanraj/bizdesk/app/repositories"
	"github.com/shashiranjanraj/bizdesk/pkg/collection"
	"github.com/shashiranjanraj/bizdesk/pkg/event"
)

// InventoryService manages the product catalog.
type InventoryService struct {
	products repositories.Repository[*models.Product]
}

func NewInventoryService(products repositories.Repository[*models.Product]) *InventoryService {
	return &InventoryService{products: products}
}

// List returns the catalog, optionally filtered by a case-insensitive name
// match (the search box on the inventory page).
func (s *InventoryService) List(query string) ([]*models.Product, error) {
	all, err := s.products.All()
	if err != nil {
		return nil, err
	}
	if query == "" {
		return all, nil
	}

	q := strings.ToLower(query)
	matched := make([]*models.Product, 0, len(all))
	for _, p := range all {
		if strings.Contains(strings.ToLower(p.Name), q) {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

func (s *InventoryService) Get(id int64) (*models.Product, error) {
	return s.products.Find(id)
}

func (s *InventoryService) Create(p *models.Product) (*models.Product, error) {
	created, err := s.products.Create(p)
	if err != nil {
		return nil, err
	}
	event.Fire("product.created", created)
	s.checkStock(created)
	return created, nil
}

func (s *InventoryService) Update(id int64, p *models.Product) (*models.Product, error) {
	updated, err := s.products.Update(id, p)
	if err != nil {
		return nil, err
	}
	event.Fire("product.updated", updated)
	s.checkStock(updated)
	return updated, nil
}

func (s *InventoryService) Delete(id int64) error {
	if err := s.products.Delete(id); err != nil {
		return err
	}
	event.Fire("product.deleted", id)
	return nil
}

// LowStock returns every product at or below its reorder point.
func (s *InventoryService) LowStock() ([]*models.Product, error) {
	all, err := s.products.All()
	if err != nil {
		return nil, err
	}
	return collection.Filter(all, func(p *models.Product) bool { return p.LowStock() }), nil
}

func (s *InventoryService) checkStock(p *models.Product) {
	if p.LowStock() {
		event.Fire("inventory.low_stock", p)
	}
}
