package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/hotel-service/internal/domain"
)

// RoomRepository defines persistence access for rooms.
type RoomRepository interface {
	List(ctx context.Context, limit, offset int) ([]domain.Room, error)
	GetByNumber(ctx context.Context, number int) (*domain.Room, error)
	Create(ctx context.Context, room *domain.Room) error
	Update(ctx context.Context, room *domain.Room) error
	FindAvailable(ctx context.Context, maxPrice float64, checkin, checkout time.Time) ([]domain.Room, error)
}

type roomRepository struct {
	pool *pgxpool.Pool
}

// NewRoomRepository returns a Postgres-backed implementation.
func NewRoomRepository(pool *pgxpool.Pool) RoomRepository {
	return &roomRepository{pool: pool}
}

func (r *roomRepository) List(ctx context.Context, limit, offset int) ([]domain.Room, error) {
	const query = `
        SELECT room_number, room_price, room_type, image, description
        FROM rooms ORDER BY room_number LIMIT $1 OFFSET $2`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanRooms(rows)
}

func (r *roomRepository) GetByNumber(ctx context.Context, number int) (*domain.Room, error) {
	const query = `
        SELECT room_number, room_price, room_type, image, description
        FROM rooms WHERE room_number=$1`

	var room domain.Room
	if err := r.pool.QueryRow(ctx, query, number).Scan(
		&room.RoomNumber, &room.RoomPrice, &room.RoomType, &room.Image, &room.Description,
	); err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *roomRepository) Create(ctx context.Context, room *domain.Room) error {
	const query = `
        INSERT INTO rooms (room_number, room_price, room_type, image, description)
        VALUES ($1, $2, $3, $4, $5)`

	_, err := r.pool.Exec(ctx, query,
		room.RoomNumber,
		room.RoomPrice,
		room.RoomType,
		room.Image,
		room.Description,
	)
	return err
}

func (r *roomRepository) Update(ctx context.Context, room *domain.Room) error {
	const query = `
        UPDATE rooms SET room_price=$1, room_type=$2, image=$3, description=$4
        WHERE room_number=$5`

	cmd, err := r.pool.Exec(ctx, query,
		room.RoomPrice,
		room.RoomType,
		room.Image,
		room.Description,
		room.RoomNumber,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// FindAvailable returns rooms priced at or under maxPrice with no
// reservation overlapping the stay window.
func (r *roomRepository) FindAvailable(ctx context.Context, maxPrice float64, checkin, checkout time.Time) ([]domain.Room, error) {
	const query = `
        SELECT room_number, room_price, room_type, image, description
        FROM rooms
        WHERE room_price <= $1
          AND room_number NOT IN (
              SELECT rs.room_number
              FROM reservations rs
              WHERE rs.checkin_date < $3 AND rs.checkout_date > $2
          )
        ORDER BY room_number`

	rows, err := r.pool.Query(ctx, query, maxPrice, checkin, checkout)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanRooms(rows)
}

func scanRooms(rows pgx.Rows) ([]domain.Room, error) {
	rooms := make([]domain.Room, 0)
	for rows.Next() {
		var room domain.Room
		if err := rows.Scan(&room.RoomNumber, &room.RoomPrice, &room.RoomType, &room.Image, &room.Description); err != nil {
			return nil, err
		}
		rooms = append(rooms, room)
	}
	return rooms, rows.Err()
}
