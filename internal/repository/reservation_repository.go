package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/hotel-service/internal/domain"
)

// ReservationRepository defines persistence access for reservations.
type ReservationRepository interface {
	List(ctx context.Context, limit, offset int) ([]domain.Reservation, error)
	GetByID(ctx context.Context, id int) (*domain.Reservation, error)
	Create(ctx context.Context, reservation *domain.Reservation) error
	Update(ctx context.Context, reservation *domain.Reservation) error
	ListArrivals(ctx context.Context, day time.Time) ([]domain.Arrival, error)
}

type reservationRepository struct {
	pool *pgxpool.Pool
}

// NewReservationRepository returns a Postgres-backed implementation.
func NewReservationRepository(pool *pgxpool.Pool) ReservationRepository {
	return &reservationRepository{pool: pool}
}

func (r *reservationRepository) List(ctx context.Context, limit, offset int) ([]domain.Reservation, error) {
	const query = `
        SELECT reservation_id, checkin_date, checkout_date, customer_id, room_number, employee_id
        FROM reservations ORDER BY reservation_id LIMIT $1 OFFSET $2`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reservations := make([]domain.Reservation, 0)
	for rows.Next() {
		var res domain.Reservation
		if err := rows.Scan(
			&res.ReservationID, &res.CheckinDate, &res.CheckoutDate,
			&res.CustomerID, &res.RoomNumber, &res.EmployeeID,
		); err != nil {
			return nil, err
		}
		reservations = append(reservations, res)
	}
	return reservations, rows.Err()
}

func (r *reservationRepository) GetByID(ctx context.Context, id int) (*domain.Reservation, error) {
	const query = `
        SELECT reservation_id, checkin_date, checkout_date, customer_id, room_number, employee_id
        FROM reservations WHERE reservation_id=$1`

	var res domain.Reservation
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&res.ReservationID, &res.CheckinDate, &res.CheckoutDate,
		&res.CustomerID, &res.RoomNumber, &res.EmployeeID,
	); err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *reservationRepository) Create(ctx context.Context, reservation *domain.Reservation) error {
	const query = `
        INSERT INTO reservations (checkin_date, checkout_date, customer_id, room_number, employee_id)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING reservation_id`

	return r.pool.QueryRow(ctx, query,
		reservation.CheckinDate,
		reservation.CheckoutDate,
		reservation.CustomerID,
		reservation.RoomNumber,
		reservation.EmployeeID,
	).Scan(&reservation.ReservationID)
}

func (r *reservationRepository) Update(ctx context.Context, reservation *domain.Reservation) error {
	const query = `
        UPDATE reservations SET checkin_date=$1, checkout_date=$2, customer_id=$3, room_number=$4, employee_id=$5
        WHERE reservation_id=$6`

	cmd, err := r.pool.Exec(ctx, query,
		reservation.CheckinDate,
		reservation.CheckoutDate,
		reservation.CustomerID,
		reservation.RoomNumber,
		reservation.EmployeeID,
		reservation.ReservationID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// ListArrivals returns the front-desk view of reservations checking in on
// the given calendar day.
func (r *reservationRepository) ListArrivals(ctx context.Context, day time.Time) ([]domain.Arrival, error) {
	const query = `
        SELECT rs.reservation_id, cst.first_name, cst.last_name, rs.room_number, rs.checkin_date
        FROM reservations rs
        JOIN customers cst ON cst.customer_id = rs.customer_id
        WHERE rs.checkin_date >= $1 AND rs.checkin_date < $2
        ORDER BY rs.checkin_date`

	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.AddDate(0, 0, 1)

	rows, err := r.pool.Query(ctx, query, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	arrivals := make([]domain.Arrival, 0)
	for rows.Next() {
		var a domain.Arrival
		if err := rows.Scan(&a.ReservationID, &a.FirstName, &a.LastName, &a.RoomNumber, &a.CheckinDate); err != nil {
			return nil, err
		}
		arrivals = append(arrivals, a)
	}
	return arrivals, rows.Err()
}
