package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/hotel-service/internal/api/dto"
	"github.com/spec-kit/hotel-service/internal/auth"
	"github.com/spec-kit/hotel-service/internal/service"
	apperrors "github.com/spec-kit/hotel-service/pkg/util"
)

// ReservationsHandler exposes reservation endpoints.
type ReservationsHandler struct {
	reservations *service.ReservationService
}

// NewReservationsHandler constructs handler.
func NewReservationsHandler(reservations *service.ReservationService) *ReservationsHandler {
	return &ReservationsHandler{reservations: reservations}
}

// List handles GET /reservations.
func (h *ReservationsHandler) List(c *fiber.Ctx) error {
	reservations, err := h.reservations.List(c.Context(), c.QueryInt("limit", 20), c.QueryInt("offset", 0))
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": dto.FromReservations(reservations)})
}

// Arrivals handles GET /reservations/today.
func (h *ReservationsHandler) Arrivals(c *fiber.Ctx) error {
	arrivals, err := h.reservations.Arrivals(c.Context())
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": dto.FromArrivals(arrivals)})
}

// Get handles GET /reservations/:id.
func (h *ReservationsHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid reservation id")
	}

	reservation, err := h.reservations.Get(c.Context(), id)
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": dto.FromReservation(*reservation)})
}

// Create handles POST /reservations/create.
func (h *ReservationsHandler) Create(c *fiber.Ctx) error {
	var req dto.ReservationRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	reservation := req.ToDomain()
	if err := h.reservations.Create(c.Context(), reservation, actorName(c)); err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.FromReservation(*reservation)})
}

// Update handles PUT /reservations/update.
func (h *ReservationsHandler) Update(c *fiber.Ctx) error {
	var req dto.ReservationRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	reservation := req.ToDomain()
	if err := h.reservations.Update(c.Context(), reservation, actorName(c)); err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": dto.FromReservation(*reservation)})
}

func actorName(c *fiber.Ctx) string {
	if principal, ok := auth.PrincipalFromContext(c); ok && principal.Employee != nil {
		return principal.Employee.Username
	}
	return ""
}
