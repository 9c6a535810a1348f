package services

import (
	"errors"
	"fmt"

	"github.com/shashiranjanraj/bizdesk/app/models"
	"github.com/shashiranjanraj/bizdesk/app/repositories"
	"github.com/shashiranjanraj/bizdesk/pkg/event"
	"github.com/shashiranjanraj/bizdesk/pkg/store"
)

// OrderService manages customer orders. Line items reference catalog
// products; the unit price is snapshotted from the catalog on every create
// and update so stored totals survive later price changes.
type OrderService struct {
	orders   repositories.Repository[*models.Order]
	products repositories.Repository[*models.Product]
}

func NewOrderService(orders repositories.Repository[*models.Order], products repositories.Repository[*models.Product]) *OrderService {
	return &OrderService{orders: orders, products: products}
}

func (s *OrderService) List() ([]*models.Order, error) {
	return s.orders.All()
}

func (s *OrderService) Get(id int64) (*models.Order, error) {
	return s.orders.Find(id)
}

func (s *OrderService) Create(o *models.Order) (*models.Order, error) {
	if err := s.snapshotPrices(o); err != nil {
		return nil, err
	}
	created, err := s.orders.Create(o)
	if err != nil {
		return nil, err
	}
	event.Fire("order.created", created)
	return created, nil
}

func (s *OrderService) Update(id int64, o *models.Order) (*models.Order, error) {
	if err := s.snapshotPrices(o); err != nil {
		return nil, err
	}
	updated, err := s.orders.Update(id, o)
	if err != nil {
		return nil, err
	}
	event.Fire("order.updated", updated)
	return updated, nil
}

func (s *OrderService) Delete(id int64) error {
	if err := s.orders.Delete(id); err != nil {
		return err
	}
	event.Fire("order.deleted", id)
	return nil
}

// snapshotPrices resolves each line item against the catalog and copies the
// current price onto the item. An unknown product id is a validation error,
// not a server error.
func (s *OrderService) snapshotPrices(o *models.Order) error {
	for i, item := range o.OrderItems {
		p, err := s.products.Find(item.ProductID)
		if errors.Is(err, store.ErrNotFound) {
			return &store.ValidationError{Fields: map[string]string{
				"orderItems": fmt.Sprintf("Unknown product id %d.", item.ProductID),
			}}
		}
		if err != nil {
			return err
		}
		if item.Quantity <= 0 {
			return &store.ValidationError{Fields: map[string]string{
				"orderItems": "Each item quantity must be at least 1.",
			}}
		}
		o.OrderItems[i].UnitPrice = p.Price
	}
	return nil
}
