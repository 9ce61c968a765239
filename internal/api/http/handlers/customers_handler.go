package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/hotel-service/internal/api/dto"
	"github.com/spec-kit/hotel-service/internal/service"
	apperrors "github.com/spec-kit/hotel-service/pkg/util"
)

// CustomersHandler exposes customer CRUD endpoints.
type CustomersHandler struct {
	customers *service.CustomerService
}

// NewCustomersHandler constructs handler.
func NewCustomersHandler(customers *service.CustomerService) *CustomersHandler {
	return &CustomersHandler{customers: customers}
}

// List handles GET /customers.
func (h *CustomersHandler) List(c *fiber.Ctx) error {
	customers, err := h.customers.List(c.Context(), c.QueryInt("limit", 20), c.QueryInt("offset", 0))
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": dto.FromCustomers(customers)})
}

// Get handles GET /customers/:id.
func (h *CustomersHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid customer id")
	}

	customer, err := h.customers.Get(c.Context(), id)
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": dto.FromCustomer(*customer)})
}

// Create handles POST /customers/create.
func (h *CustomersHandler) Create(c *fiber.Ctx) error {
	var req dto.CustomerRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	customer := req.ToDomain()
	if err := h.customers.Create(c.Context(), customer); err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.FromCustomer(*customer)})
}

// Update handles PUT /customers/update.
func (h *CustomersHandler) Update(c *fiber.Ctx) error {
	var req dto.CustomerRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	customer := req.ToDomain()
	if err := h.customers.Update(c.Context(), customer); err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": dto.FromCustomer(*customer)})
}
