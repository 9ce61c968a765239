package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/hotel-service/internal/domain"
)

// PaymentRepository defines persistence access for payments.
type PaymentRepository interface {
	GetByID(ctx context.Context, id int) (*domain.Payment, error)
	ListByReservation(ctx context.Context, reservationID int) ([]domain.Payment, error)
	Create(ctx context.Context, payment *domain.Payment) error
}

type paymentRepository struct {
	pool *pgxpool.Pool
}

// NewPaymentRepository returns a Postgres-backed implementation.
func NewPaymentRepository(pool *pgxpool.Pool) PaymentRepository {
	return &paymentRepository{pool: pool}
}

func (r *paymentRepository) GetByID(ctx context.Context, id int) (*domain.Payment, error) {
	const query = `
        SELECT payment_id, card_type, card_number, card_expiration, payment_amount, description, customer_id, reservation_id
        FROM payments WHERE payment_id=$1`

	var p domain.Payment
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&p.PaymentID, &p.CardType, &p.CardNumber, &p.CardExpiration,
		&p.PaymentAmount, &p.Description, &p.CustomerID, &p.ReservationID,
	); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *paymentRepository) ListByReservation(ctx context.Context, reservationID int) ([]domain.Payment, error) {
	const query = `
        SELECT payment_id, card_type, card_number, card_expiration, payment_amount, description, customer_id, reservation_id
        FROM payments WHERE reservation_id=$1 ORDER BY payment_id`

	rows, err := r.pool.Query(ctx, query, reservationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	payments := make([]domain.Payment, 0)
	for rows.Next() {
		var p domain.Payment
		if err := rows.Scan(
			&p.PaymentID, &p.CardType, &p.CardNumber, &p.CardExpiration,
			&p.PaymentAmount, &p.Description, &p.CustomerID, &p.ReservationID,
		); err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

func (r *paymentRepository) Create(ctx context.Context, payment *domain.Payment) error {
	const query = `
        INSERT INTO payments (card_type, card_number, card_expiration, payment_amount, description, customer_id, reservation_id)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING payment_id`

	return r.pool.QueryRow(ctx, query,
		payment.CardType,
		payment.CardNumber,
		payment.CardExpiration,
		payment.PaymentAmount,
		payment.Description,
		payment.CustomerID,
		payment.ReservationID,
	).Scan(&payment.PaymentID)
}
