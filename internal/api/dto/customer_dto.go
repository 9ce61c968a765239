package dto

import "github.com/spec-kit/hotel-service/internal/domain"

// CustomerRequest payload for creating or updating a customer.
type CustomerRequest struct {
	CustomerID int    `json:"customerId"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Address    string `json:"address"`
	City       string `json:"city"`
	State      string `json:"state"`
	Phone      string `json:"phone"`
}

// ToDomain converts the payload to the domain model.
func (r CustomerRequest) ToDomain() *domain.Customer {
	return &domain.Customer{
		CustomerID: r.CustomerID,
		FirstName:  r.FirstName,
		LastName:   r.LastName,
		Address:    r.Address,
		City:       r.City,
		State:      r.State,
		Phone:      r.Phone,
	}
}

// CustomerResponse serializes a customer.
type CustomerResponse struct {
	CustomerID int    `json:"customerId"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Address    string `json:"address"`
	City       string `json:"city"`
	State      string `json:"state"`
	Phone      string `json:"phone"`
}

// FromCustomer maps the domain model to its response shape.
func FromCustomer(c domain.Customer) CustomerResponse {
	return CustomerResponse{
		CustomerID: c.CustomerID,
		FirstName:  c.FirstName,
		LastName:   c.LastName,
		Address:    c.Address,
		City:       c.City,
		State:      c.State,
		Phone:      c.Phone,
	}
}

// FromCustomers maps a slice of customers.
func FromCustomers(customers []domain.Customer) []CustomerResponse {
	out := make([]CustomerResponse, 0, len(customers))
	for _, c := range customers {
		out = append(out, FromCustomer(c))
	}
	return out
}
