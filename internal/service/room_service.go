package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/hotel-service/internal/domain"
	"github.com/spec-kit/hotel-service/internal/persistence"
	"github.com/spec-kit/hotel-service/internal/repository"
	apperrors "github.com/spec-kit/hotel-service/pkg/util"
)

// RoomService exposes room CRUD and the availability search. Availability
// results are cached read-through in Redis with a short TTL; a stale entry
// only over-reports availability for that window, which the reservation
// insert catches.
type RoomService struct {
	rooms    repository.RoomRepository
	cache    *persistence.Redis
	cacheTTL time.Duration
	logger   *zap.Logger
}

// NewRoomService builds the service.
func NewRoomService(rooms repository.RoomRepository, cache *persistence.Redis, cacheTTL time.Duration, logger *zap.Logger) *RoomService {
	return &RoomService{rooms: rooms, cache: cache, cacheTTL: cacheTTL, logger: logger}
}

// List returns a page of rooms.
func (s *RoomService) List(ctx context.Context, limit, offset int) ([]domain.Room, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.rooms.List(ctx, limit, offset)
}

// Get returns one room by number.
func (s *RoomService) Get(ctx context.Context, number int) (*domain.Room, error) {
	return s.rooms.GetByNumber(ctx, number)
}

// Create persists a new room.
func (s *RoomService) Create(ctx context.Context, room *domain.Room) error {
	if room.RoomNumber <= 0 {
		return apperrors.NewValidationError("room number is required", nil)
	}
	if room.RoomPrice < 0 {
		return apperrors.NewValidationError("room price must not be negative", nil)
	}
	return s.rooms.Create(ctx, room)
}

// Update persists changes to an existing room.
func (s *RoomService) Update(ctx context.Context, room *domain.Room) error {
	if room.RoomNumber <= 0 {
		return apperrors.NewValidationError("room number is required", nil)
	}
	return s.rooms.Update(ctx, room)
}

// FindAvailable returns rooms free for the stay window at or under the price
// cap, consulting the cache first.
func (s *RoomService) FindAvailable(ctx context.Context, search domain.RoomSearch) ([]domain.Room, error) {
	if search.CheckinDate.IsZero() || search.CheckoutDate.IsZero() {
		return nil, apperrors.NewValidationError("checkin and checkout dates are required", nil)
	}
	if !search.CheckinDate.Before(search.CheckoutDate) {
		return nil, apperrors.NewValidationError("checkin must be before checkout", nil)
	}

	key := fmt.Sprintf("rooms:available:%.2f:%s:%s",
		search.MaxPrice,
		search.CheckinDate.Format("2006-01-02"),
		search.CheckoutDate.Format("2006-01-02"),
	)

	if cached, ok := s.cacheGet(ctx, key); ok {
		return cached, nil
	}

	rooms, err := s.rooms.FindAvailable(ctx, search.MaxPrice, search.CheckinDate, search.CheckoutDate)
	if err != nil {
		return nil, err
	}

	s.cacheSet(ctx, key, rooms)
	return rooms, nil
}

func (s *RoomService) cacheGet(ctx context.Context, key string) ([]domain.Room, bool) {
	if s.cache == nil || s.cache.Client == nil {
		return nil, false
	}
	raw, err := s.cache.Client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			s.logger.Warn("availability cache read failed", zap.Error(err))
		}
		return nil, false
	}
	var rooms []domain.Room
	if err := json.Unmarshal(raw, &rooms); err != nil {
		s.logger.Warn("availability cache entry corrupt", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	return rooms, true
}

func (s *RoomService) cacheSet(ctx context.Context, key string, rooms []domain.Room) {
	if s.cache == nil || s.cache.Client == nil {
		return
	}
	raw, err := json.Marshal(rooms)
	if err != nil {
		return
	}
	if err := s.cache.Client.Set(ctx, key, raw, s.cacheTTL).Err(); err != nil {
		s.logger.Warn("availability cache write failed", zap.Error(err))
	}
}
