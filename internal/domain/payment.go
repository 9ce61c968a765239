package domain

import "time"

// Payment records a card payment against a reservation.
type Payment struct {
	PaymentID      int
	CardType       string
	CardNumber     string
	CardExpiration time.Time
	PaymentAmount  float64
	Description    string
	CustomerID     int
	ReservationID  int
}
