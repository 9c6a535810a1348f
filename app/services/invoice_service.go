package services

import (
	"github.com/shashiranjanraj/bizdesk/app/models"
	"github.com/shashiranjanraj/bizdesk/app/repositories"
	"github.com/shashiranjanraj/bizdesk/pkg/event"
)

// InvoiceService manages billing documents. Totals are derived from the item
// lines by the record's Recompute, which every repository driver runs before
// persisting.
type InvoiceService struct {
	invoices repositories.Repository[*models.Invoice]
}

func NewInvoiceService(invoices repositories.Repository[*models.Invoice]) *InvoiceService {
	return &InvoiceService{invoices: invoices}
}

func (s *InvoiceService) List() ([]*models.Invoice, error) {
	return s.invoices.All()
}

func (s *InvoiceService) Get(id int64) (*models.Invoice, error) {
	return s.invoices.Find(id)
}

func (s *InvoiceService) Create(inv *models.Invoice) (*models.Invoice, error) {
	created, err := s.invoices.Create(inv)
	if err != nil {
		return nil, err
	}
	event.Fire("invoice.created", created)
	return created, nil
}

func (s *InvoiceService) Update(id int64, inv *models.Invoice) (*models.Invoice, error) {
	updated, err := s.invoices.Update(id, inv)
	if err != nil {
		return nil, err
	}
	event.Fire("invoice.updated", updated)
	return updated, nil
}

func (s *InvoiceService) Delete(id int64) error {
	if err := s.invoices.Delete(id); err != nil {
		return err
	}
	event.Fire("invoice.deleted", id)
	return nil
}
