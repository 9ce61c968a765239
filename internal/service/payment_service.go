package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/hotel-service/internal/domain"
	"github.com/spec-kit/hotel-service/internal/events"
	"github.com/spec-kit/hotel-service/internal/repository"
	apperrors "github.com/spec-kit/hotel-service/pkg/util"
)

// PaymentService exposes payment recording and lookup.
type PaymentService struct {
	payments     repository.PaymentRepository
	reservations repository.ReservationRepository
	dispatcher   events.Dispatcher
}

// NewPaymentService builds the service.
func NewPaymentService(payments repository.PaymentRepository, reservations repository.ReservationRepository, dispatcher events.Dispatcher) *PaymentService {
	return &PaymentService{payments: payments, reservations: reservations, dispatcher: dispatcher}
}

// ListByReservation returns the payments recorded against a reservation.
func (s *PaymentService) ListByReservation(ctx context.Context, reservationID int) ([]domain.Payment, error) {
	return s.payments.ListByReservation(ctx, reservationID)
}

// Create records a payment against an existing reservation.
func (s *PaymentService) Create(ctx context.Context, payment *domain.Payment, actor string) error {
	if payment.PaymentAmount <= 0 {
		return apperrors.NewValidationError("payment amount must be positive", nil)
	}
	if payment.CardType == "" || payment.CardNumber == "" {
		return apperrors.NewValidationError("card type and number are required", nil)
	}
	if _, err := s.reservations.GetByID(ctx, payment.ReservationID); err != nil {
		return apperrors.NewNotFound("reservation", map[string]any{"reservation_id": payment.ReservationID})
	}

	if err := s.payments.Create(ctx, payment); err != nil {
		return err
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventPaymentRecorded,
			Actor:     actor,
			Timestamp: time.Now(),
			Payload: events.PaymentRecordedPayload{
				PaymentID:     payment.PaymentID,
				ReservationID: payment.ReservationID,
				Amount:        payment.PaymentAmount,
			},
		})
	}
	return nil
}
