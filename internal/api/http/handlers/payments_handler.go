package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/hotel-service/internal/api/dto"
	"github.com/spec-kit/hotel-service/internal/service"
	apperrors "github.com/spec-kit/hotel-service/pkg/util"
)

// PaymentsHandler exposes payment endpoints.
type PaymentsHandler struct {
	payments *service.PaymentService
}

// NewPaymentsHandler constructs handler.
func NewPaymentsHandler(payments *service.PaymentService) *PaymentsHandler {
	return &PaymentsHandler{payments: payments}
}

// ListByReservation handles GET /payments/:id, where id is a reservation id.
func (h *PaymentsHandler) ListByReservation(c *fiber.Ctx) error {
	reservationID, err := c.ParamsInt("id")
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid reservation id")
	}

	payments, err := h.payments.ListByReservation(c.Context(), reservationID)
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": dto.FromPayments(payments)})
}

// Create handles POST /payments/create.
func (h *PaymentsHandler) Create(c *fiber.Ctx) error {
	var req dto.PaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	payment := req.ToDomain()
	if err := h.payments.Create(c.Context(), payment, actorName(c)); err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.FromPayment(*payment)})
}
