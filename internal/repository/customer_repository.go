package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/hotel-service/internal/domain"
)

// CustomerRepository defines persistence access for customers.
type CustomerRepository interface {
	List(ctx context.Context, limit, offset int) ([]domain.Customer, error)
	GetByID(ctx context.Context, id int) (*domain.Customer, error)
	Create(ctx context.Context, customer *domain.Customer) error
	Update(ctx context.Context, customer *domain.Customer) error
}

type customerRepository struct {
	pool *pgxpool.Pool
}

// NewCustomerRepository returns a Postgres-backed implementation.
func NewCustomerRepository(pool *pgxpool.Pool) CustomerRepository {
	return &customerRepository{pool: pool}
}

func (r *customerRepository) List(ctx context.Context, limit, offset int) ([]domain.Customer, error) {
	const query = `
        SELECT customer_id, first_name, last_name, address, city, state, phone
        FROM customers ORDER BY customer_id LIMIT $1 OFFSET $2`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	customers := make([]domain.Customer, 0)
	for rows.Next() {
		var c domain.Customer
		if err := rows.Scan(&c.CustomerID, &c.FirstName, &c.LastName, &c.Address, &c.City, &c.State, &c.Phone); err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

func (r *customerRepository) GetByID(ctx context.Context, id int) (*domain.Customer, error) {
	const query = `
        SELECT customer_id, first_name, last_name, address, city, state, phone
        FROM customers WHERE customer_id=$1`

	var c domain.Customer
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&c.CustomerID, &c.FirstName, &c.LastName, &c.Address, &c.City, &c.State, &c.Phone,
	); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *customerRepository) Create(ctx context.Context, customer *domain.Customer) error {
	const query = `
        INSERT INTO customers (first_name, last_name, address, city, state, phone)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING customer_id`

	return r.pool.QueryRow(ctx, query,
		customer.FirstName,
		customer.LastName,
		customer.Address,
		customer.City,
		customer.State,
		customer.Phone,
	).Scan(&customer.CustomerID)
}

func (r *customerRepository) Update(ctx context.Context, customer *domain.Customer) error {
	const query = `
        UPDATE customers SET first_name=$1, last_name=$2, address=$3, city=$4, state=$5, phone=$6
        WHERE customer_id=$7`

	cmd, err := r.pool.Exec(ctx, query,
		customer.FirstName,
		customer.LastName,
		customer.Address,
		customer.City,
		customer.State,
		customer.Phone,
		customer.CustomerID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
