package dto

import (
	"time"

	"github.com/spec-kit/hotel-service/internal/domain"
)

// RoomRequest payload for creating or updating a room.
type RoomRequest struct {
	RoomNumber  int     `json:"roomNumber"`
	RoomPrice   float64 `json:"roomPrice"`
	RoomType    string  `json:"roomType"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
}

// ToDomain converts the payload to the domain model.
func (r RoomRequest) ToDomain() *domain.Room {
	return &domain.Room{
		RoomNumber:  r.RoomNumber,
		RoomPrice:   r.RoomPrice,
		RoomType:    r.RoomType,
		Image:       r.Image,
		Description: r.Description,
	}
}

// RoomSearchRequest payload for the availability search.
type RoomSearchRequest struct {
	RoomPrice    float64   `json:"roomPrice"`
	CheckinDate  time.Time `json:"checkinDate"`
	CheckoutDate time.Time `json:"checkoutDate"`
}

// ToDomain converts the payload to the search criteria.
func (r RoomSearchRequest) ToDomain() domain.RoomSearch {
	return domain.RoomSearch{
		MaxPrice:     r.RoomPrice,
		CheckinDate:  r.CheckinDate,
		CheckoutDate: r.CheckoutDate,
	}
}

// RoomResponse serializes a room.
type RoomResponse struct {
	RoomNumber  int     `json:"roomNumber"`
	RoomPrice   float64 `json:"roomPrice"`
	RoomType    string  `json:"roomType"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
}

// FromRoom maps the domain model to its response shape.
func FromRoom(r domain.Room) RoomResponse {
	return RoomResponse{
		RoomNumber:  r.RoomNumber,
		RoomPrice:   r.RoomPrice,
		RoomType:    r.RoomType,
		Image:       r.Image,
		Description: r.Description,
	}
}

// FromRooms maps a slice of rooms.
func FromRooms(rooms []domain.Room) []RoomResponse {
	out := make([]RoomResponse, 0, len(rooms))
	for _, r := range rooms {
		out = append(out, FromRoom(r))
	}
	return out
}
