package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/hotel-service/internal/api/dto"
	"github.com/spec-kit/hotel-service/internal/service"
	apperrors "github.com/spec-kit/hotel-service/pkg/util"
)

// RoomsHandler exposes room CRUD and availability endpoints.
type RoomsHandler struct {
	rooms *service.RoomService
}

// NewRoomsHandler constructs handler.
func NewRoomsHandler(rooms *service.RoomService) *RoomsHandler {
	return &RoomsHandler{rooms: rooms}
}

// List handles GET /rooms.
func (h *RoomsHandler) List(c *fiber.Ctx) error {
	rooms, err := h.rooms.List(c.Context(), c.QueryInt("limit", 20), c.QueryInt("offset", 0))
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": dto.FromRooms(rooms)})
}

// Get handles GET /rooms/:id.
func (h *RoomsHandler) Get(c *fiber.Ctx) error {
	number, err := c.ParamsInt("id")
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid room number")
	}

	room, err := h.rooms.Get(c.Context(), number)
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": dto.FromRoom(*room)})
}

// FindAvailable handles POST /rooms/availablerooms.
func (h *RoomsHandler) FindAvailable(c *fiber.Ctx) error {
	var req dto.RoomSearchRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	rooms, err := h.rooms.FindAvailable(c.Context(), req.ToDomain())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.FromRooms(rooms)})
}

// Create handles POST /rooms/create.
func (h *RoomsHandler) Create(c *fiber.Ctx) error {
	var req dto.RoomRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	room := req.ToDomain()
	if err := h.rooms.Create(c.Context(), room); err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.FromRoom(*room)})
}

// Update handles PUT /rooms/update.
func (h *RoomsHandler) Update(c *fiber.Ctx) error {
	var req dto.RoomRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	room := req.ToDomain()
	if err := h.rooms.Update(c.Context(), room); err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": dto.FromRoom(*room)})
}
