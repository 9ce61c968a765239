package domain

import "time"

// Reservation links a customer, a room and the employee who booked it.
type Reservation struct {
	ReservationID int
	CheckinDate   time.Time
	CheckoutDate  time.Time
	CustomerID    int
	RoomNumber    int
	EmployeeID    int
}

// Arrival is the front-desk view of a reservation checking in on a given day.
type Arrival struct {
	ReservationID int
	FirstName     string
	LastName      string
	RoomNumber    int
	CheckinDate   time.Time
}
