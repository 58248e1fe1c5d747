package service

import (
	"context"
	"fmt"

	"crm-backend/internal/domain"
	"crm-backend/internal/repository"
)

type customerService struct {
	customerRepo repository.CustomerRepository
	notifier     Notifier
}

func NewCustomerService(customerRepo repository.CustomerRepository, notifier Notifier) CustomerService {
	return &customerService{customerRepo: customerRepo, notifier: notifier}
}

func (s *customerService) CreateCustomer(ctx context.Context, c *domain.Customer) error {
	if c.Status == "" {
		c.Status = domain.CustomerStatusLead
	}
	if err := s.customerRepo.Create(ctx, c); err != nil {
		return err
	}
	s.notifier.Publish("customer", "New customer",
		fmt.Sprintf("%s (%s) was added to the customer base", c.Name, c.Company))
	return nil
}

func (s *customerService) GetCustomer(ctx context.Context, id int32) (*domain.Customer, error) {
	return s.customerRepo.GetByID(ctx, id)
}

func (s *customerService) ListCustomers(ctx context.Context, search string, page, pageSize int32) ([]domain.Customer, int32, error) {
	return s.customerRepo.List(ctx, search, page, pageSize)
}

func (s *customerService) UpdateCustomer(ctx context.Context, c *domain.Customer) error {
	return s.customerRepo.Update(ctx, c)
}

func (s *customerService) DeleteCustomer(ctx context.Context, id int32) error {
	return s.customerRepo.Delete(ctx, id)
}
