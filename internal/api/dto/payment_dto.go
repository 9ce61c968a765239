package dto

import (
	"time"

	"github.com/spec-kit/hotel-service/internal/domain"
)

// PaymentRequest payload for recording a payment.
type PaymentRequest struct {
	CardType       string    `json:"cardType"`
	CardNumber     string    `json:"cardNumber"`
	CardExpiration time.Time `json:"cardExpiration"`
	PaymentAmount  float64   `json:"paymentAmount"`
	Description    string    `json:"description"`
	CustomerID     int       `json:"customerId"`
	ReservationID  int       `json:"reservationId"`
}

// ToDomain converts the payload to the domain model.
func (r PaymentRequest) ToDomain() *domain.Payment {
	return &domain.Payment{
		CardType:       r.CardType,
		CardNumber:     r.CardNumber,
		CardExpiration: r.CardExpiration,
		PaymentAmount:  r.PaymentAmount,
		Description:    r.Description,
		CustomerID:     r.CustomerID,
		ReservationID:  r.ReservationID,
	}
}

// PaymentResponse serializes a payment. The card number is masked down to
// its last four digits.
type PaymentResponse struct {
	PaymentID      int       `json:"paymentId"`
	CardType       string    `json:"cardType"`
	CardNumber     string    `json:"cardNumber"`
	CardExpiration time.Time `json:"cardExpiration"`
	PaymentAmount  float64   `json:"paymentAmount"`
	Description    string    `json:"description"`
	CustomerID     int       `json:"customerId"`
	ReservationID  int       `json:"reservationId"`
}

// FromPayment maps the domain model to its response shape.
func FromPayment(p domain.Payment) PaymentResponse {
	return PaymentResponse{
		PaymentID:      p.PaymentID,
		CardType:       p.CardType,
		CardNumber:     maskCardNumber(p.CardNumber),
		CardExpiration: p.CardExpiration,
		PaymentAmount:  p.PaymentAmount,
		Description:    p.Description,
		CustomerID:     p.CustomerID,
		ReservationID:  p.ReservationID,
	}
}

// FromPayments maps a slice of payments.
func FromPayments(payments []domain.Payment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, FromPayment(p))
	}
	return out
}

func maskCardNumber(number string) string {
	if len(number) <= 4 {
		return number
	}
	masked := make([]byte, len(number)-4)
	for i := range masked {
		masked[i] = '*'
	}
	return string(masked) + number[len(number)-4:]
}
