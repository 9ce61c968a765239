package dto

import (
	"time"

	"github.com/spec-kit/hotel-service/internal/domain"
)

// ReservationRequest payload for creating or updating a reservation.
type ReservationRequest struct {
	ReservationID int       `json:"reservationId"`
	CheckinDate   time.Time `json:"checkinDate"`
	CheckoutDate  time.Time `json:"checkoutDate"`
	CustomerID    int       `json:"customerId"`
	RoomNumber    int       `json:"roomNumber"`
	EmployeeID    int       `json:"employeeId"`
}

// ToDomain converts the payload to the domain model.
func (r ReservationRequest) ToDomain() *domain.Reservation {
	return &domain.Reservation{
		ReservationID: r.ReservationID,
		CheckinDate:   r.CheckinDate,
		CheckoutDate:  r.CheckoutDate,
		CustomerID:    r.CustomerID,
		RoomNumber:    r.RoomNumber,
		EmployeeID:    r.EmployeeID,
	}
}

// ReservationResponse serializes a reservation.
type ReservationResponse struct {
	ReservationID int       `json:"reservationId"`
	CheckinDate   time.Time `json:"checkinDate"`
	CheckoutDate  time.Time `json:"checkoutDate"`
	CustomerID    int       `json:"customerId"`
	RoomNumber    int       `json:"roomNumber"`
	EmployeeID    int       `json:"employeeId"`
}

// FromReservation maps the domain model to its response shape.
func FromReservation(r domain.Reservation) ReservationResponse {
	return ReservationResponse{
		ReservationID: r.ReservationID,
		CheckinDate:   r.CheckinDate,
		CheckoutDate:  r.CheckoutDate,
		CustomerID:    r.CustomerID,
		RoomNumber:    r.RoomNumber,
		EmployeeID:    r.EmployeeID,
	}
}

// FromReservations maps a slice of reservations.
func FromReservations(reservations []domain.Reservation) []ReservationResponse {
	out := make([]ReservationResponse, 0, len(reservations))
	for _, r := range reservations {
		out = append(out, FromReservation(r))
	}
	return out
}

// ArrivalResponse serializes a front-desk arrival row.
type ArrivalResponse struct {
	ReservationID int       `json:"reservationId"`
	FirstName     string    `json:"firstName"`
	LastName      string    `json:"lastName"`
	RoomNumber    int       `json:"roomNumber"`
	CheckinDate   time.Time `json:"checkinDate"`
}

// FromArrivals maps a slice of arrivals.
func FromArrivals(arrivals []domain.Arrival) []ArrivalResponse {
	out := make([]ArrivalResponse, 0, len(arrivals))
	for _, a := range arrivals {
		out = append(out, ArrivalResponse{
			ReservationID: a.ReservationID,
			FirstName:     a.FirstName,
			LastName:      a.LastName,
			RoomNumber:    a.RoomNumber,
			CheckinDate:   a.CheckinDate,
		})
	}
	return out
}
