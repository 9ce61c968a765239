package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventReservationCreated EventType = "reservation_created"
	EventReservationUpdated EventType = "reservation_updated"
	EventPaymentRecorded    EventType = "payment_recorded"
	EventEmployeeLoggedIn   EventType = "employee_logged_in"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Actor     string      `json:"actor,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// ReservationPayload payload for reservation events.
type ReservationPayload struct {
	ReservationID int       `json:"reservation_id"`
	CustomerID    int       `json:"customer_id"`
	RoomNumber    int       `json:"room_number"`
	CheckinDate   time.Time `json:"checkin_date"`
	CheckoutDate  time.Time `json:"checkout_date"`
}

// PaymentRecordedPayload payload.
type PaymentRecordedPayload struct {
	PaymentID     int     `json:"payment_id"`
	ReservationID int     `json:"reservation_id"`
	Amount        float64 `json:"amount"`
}

// EmployeeLoggedInPayload payload.
type EmployeeLoggedInPayload struct {
	EmployeeID int       `json:"employee_id"`
	Username   string    `json:"username"`
	TokenExp   time.Time `json:"token_exp"`
}
