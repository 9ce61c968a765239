package service

import (
	"context"

	"github.com/spec-kit/hotel-service/internal/domain"
	"github.com/spec-kit/hotel-service/internal/repository"
	apperrors "github.com/spec-kit/hotel-service/pkg/util"
)

// CustomerService exposes customer CRUD to the handlers.
type CustomerService struct {
	customers repository.CustomerRepository
}

// NewCustomerService builds the service.
func NewCustomerService(customers repository.CustomerRepository) *CustomerService {
	return &CustomerService{customers: customers}
}

// List returns a page of customers.
func (s *CustomerService) List(ctx context.Context, limit, offset int) ([]domain.Customer, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.customers.List(ctx, limit, offset)
}

// Get returns one customer by id.
func (s *CustomerService) Get(ctx context.Context, id int) (*domain.Customer, error) {
	return s.customers.GetByID(ctx, id)
}

// Create persists a new customer.
func (s *CustomerService) Create(ctx context.Context, customer *domain.Customer) error {
	if customer.FirstName == "" || customer.LastName == "" {
		return apperrors.NewValidationError("first and last name are required", nil)
	}
	return s.customers.Create(ctx, customer)
}

// Update persists changes to an existing customer.
func (s *CustomerService) Update(ctx context.Context, customer *domain.Customer) error {
	if customer.CustomerID <= 0 {
		return apperrors.NewValidationError("customer id is required", nil)
	}
	return s.customers.Update(ctx, customer)
}
