package repository

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/hotel-service/internal/domain"
)

// EmployeeRepository defines persistence access for employees. The token
// column holds the single currently-valid token; SetToken overwrites it
// unconditionally, so the last login wins.
type EmployeeRepository interface {
	GetByUsername(ctx context.Context, username string) (*domain.Employee, error)
	GetByID(ctx context.Context, id int) (*domain.Employee, error)
	SetToken(ctx context.Context, username, token string) error
	UpdatePassword(ctx context.Context, username, passwordHash string) error
}

type employeeRepository struct {
	pool *pgxpool.Pool
}

// NewEmployeeRepository returns a Postgres-backed implementation.
func NewEmployeeRepository(pool *pgxpool.Pool) EmployeeRepository {
	return &employeeRepository{pool: pool}
}

func (r *employeeRepository) GetByUsername(ctx context.Context, username string) (*domain.Employee, error) {
	const query = `
        SELECT employee_id, username, password, token, roles
        FROM employees WHERE username=$1`

	return r.scanEmployee(r.pool.QueryRow(ctx, query, username))
}

func (r *employeeRepository) GetByID(ctx context.Context, id int) (*domain.Employee, error) {
	const query = `
        SELECT employee_id, username, password, token, roles
        FROM employees WHERE employee_id=$1`

	return r.scanEmployee(r.pool.QueryRow(ctx, query, id))
}

func (r *employeeRepository) SetToken(ctx context.Context, username, token string) error {
	const query = `UPDATE employees SET token=$1 WHERE username=$2`

	cmd, err := r.pool.Exec(ctx, query, token, username)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *employeeRepository) UpdatePassword(ctx context.Context, username, passwordHash string) error {
	const query = `UPDATE employees SET password=$1 WHERE username=$2`

	cmd, err := r.pool.Exec(ctx, query, passwordHash, username)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *employeeRepository) scanEmployee(row pgx.Row) (*domain.Employee, error) {
	var (
		employee domain.Employee
		token    *string
		roles    string
	)
	if err := row.Scan(
		&employee.EmployeeID,
		&employee.Username,
		&employee.PasswordHash,
		&token,
		&roles,
	); err != nil {
		return nil, err
	}
	if token != nil {
		employee.Token = *token
	}
	if roles != "" {
		employee.Roles = strings.Split(roles, ",")
	}
	return &employee, nil
}
