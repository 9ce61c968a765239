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

// ReservationService exposes reservation CRUD and the arrivals view.
type ReservationService struct {
	reservations repository.ReservationRepository
	rooms        repository.RoomRepository
	dispatcher   events.Dispatcher
}

// NewReservationService builds the service.
func NewReservationService(reservations repository.ReservationRepository, rooms repository.RoomRepository, dispatcher events.Dispatcher) *ReservationService {
	return &ReservationService{reservations: reservations, rooms: rooms, dispatcher: dispatcher}
}

// List returns a page of reservations.
func (s *ReservationService) List(ctx context.Context, limit, offset int) ([]domain.Reservation, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.reservations.List(ctx, limit, offset)
}

// Get returns one reservation by id.
func (s *ReservationService) Get(ctx context.Context, id int) (*domain.Reservation, error) {
	return s.reservations.GetByID(ctx, id)
}

// Arrivals returns today's check-ins.
func (s *ReservationService) Arrivals(ctx context.Context) ([]domain.Arrival, error) {
	return s.reservations.ListArrivals(ctx, time.Now())
}

// Create validates the stay window and the room, then persists the
// reservation and publishes the created event.
func (s *ReservationService) Create(ctx context.Context, reservation *domain.Reservation, actor string) error {
	if err := s.validate(reservation); err != nil {
		return err
	}
	if _, err := s.rooms.GetByNumber(ctx, reservation.RoomNumber); err != nil {
		return apperrors.NewNotFound("room", map[string]any{"room_number": reservation.RoomNumber})
	}

	if err := s.reservations.Create(ctx, reservation); err != nil {
		return err
	}

	s.publish(ctx, events.EventReservationCreated, reservation, actor)
	return nil
}

// Update persists changes to an existing reservation.
func (s *ReservationService) Update(ctx context.Context, reservation *domain.Reservation, actor string) error {
	if reservation.ReservationID <= 0 {
		return apperrors.NewValidationError("reservation id is required", nil)
	}
	if err := s.validate(reservation); err != nil {
		return err
	}

	if err := s.reservations.Update(ctx, reservation); err != nil {
		return err
	}

	s.publish(ctx, events.EventReservationUpdated, reservation, actor)
	return nil
}

func (s *ReservationService) validate(reservation *domain.Reservation) error {
	if reservation.CheckinDate.IsZero() || reservation.CheckoutDate.IsZero() {
		return apperrors.NewValidationError("checkin and checkout dates are required", nil)
	}
	if !reservation.CheckinDate.Before(reservation.CheckoutDate) {
		return apperrors.NewValidationError("checkin must be before checkout", nil)
	}
	if reservation.CustomerID <= 0 {
		return apperrors.NewValidationError("customer id is required", nil)
	}
	return nil
}

func (s *ReservationService) publish(ctx context.Context, eventType events.EventType, reservation *domain.Reservation, actor string) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Actor:     actor,
		Timestamp: time.Now(),
		Payload: events.ReservationPayload{
			ReservationID: reservation.ReservationID,
			CustomerID:    reservation.CustomerID,
			RoomNumber:    reservation.RoomNumber,
			CheckinDate:   reservation.CheckinDate,
			CheckoutDate:  reservation.CheckoutDate,
		},
	})
}
