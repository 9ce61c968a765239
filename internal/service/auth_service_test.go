package service_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/hotel-service/internal/auth"
	"github.com/spec-kit/hotel-service/internal/domain"
	"github.com/spec-kit/hotel-service/internal/service"
	apperrors "github.com/spec-kit/hotel-service/pkg/util"
)

type fakeEmployeeRepo struct {
	employees map[string]*domain.Employee
}

func newFakeEmployeeRepo(employees ...*domain.Employee) *fakeEmployeeRepo {
	repo := &fakeEmployeeRepo{employees: make(map[string]*domain.Employee)}
	for _, e := range employees {
		repo.employees[e.Username] = e
	}
	return repo
}

func (r *fakeEmployeeRepo) GetByUsername(_ context.Context, username string) (*domain.Employee, error) {
	if e, ok := r.employees[username]; ok {
		copied := *e
		return &copied, nil
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeEmployeeRepo) GetByID(_ context.Context, id int) (*domain.Employee, error) {
	for _, e := range r.employees {
		if e.EmployeeID == id {
			copied := *e
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeEmployeeRepo) SetToken(_ context.Context, username, token string) error {
	e, ok := r.employees[username]
	if !ok {
		return pgx.ErrNoRows
	}
	e.Token = token
	return nil
}

func (r *fakeEmployeeRepo) UpdatePassword(_ context.Context, username, passwordHash string) error {
	e, ok := r.employees[username]
	if !ok {
		return pgx.ErrNoRows
	}
	e.PasswordHash = passwordHash
	return nil
}

func newAuthFixture(t *testing.T) (*service.AuthService, *auth.TokenManager, *fakeEmployeeRepo) {
	t.Helper()

	hash, err := auth.HashPassword("s3cret")
	require.NoError(t, err)

	repo := newFakeEmployeeRepo(&domain.Employee{
		EmployeeID:   7,
		Username:     "alice",
		PasswordHash: hash,
		Roles:        []string{"admin", "staff"},
	})
	tm := auth.NewTokenManager([]byte("test-signing-key"), repo, 0)
	svc := service.NewAuthService(tm, time.Hour, repo, nil, zap.NewNop())
	return svc, tm, repo
}

func assertStatus(t *testing.T, err error, status int) {
	t.Helper()
	require.Error(t, err)
	de := apperrors.ToDomainError(err)
	require.NotNil(t, de)
	assert.Equal(t, status, de.HTTPStatus)
}

func TestAuthService_LoginSuccess(t *testing.T) {
	svc, tm, repo := newAuthFixture(t)

	token, expires, err := svc.Login(context.Background(), "alice", "s3cret")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	assert.True(t, expires.After(time.Now()))
	assert.Equal(t, "alice", tm.Name(token))
	assert.Equal(t, 7, tm.ID(token))
	assert.ElementsMatch(t, []string{"admin", "staff"}, tm.Roles(token))
	assert.Equal(t, token, repo.employees["alice"].Token)
}

func TestAuthService_LoginWrongPassword(t *testing.T) {
	svc, _, _ := newAuthFixture(t)

	_, _, err := svc.Login(context.Background(), "alice", "wrong")
	assertStatus(t, err, http.StatusUnauthorized)
}

func TestAuthService_LoginUnknownUsername(t *testing.T) {
	svc, _, _ := newAuthFixture(t)

	_, _, err := svc.Login(context.Background(), "mallory", "s3cret")
	assertStatus(t, err, http.StatusUnauthorized)
}

func TestAuthService_LoginRotatesStoredToken(t *testing.T) {
	svc, tm, repo := newAuthFixture(t)

	first, _, err := svc.Login(context.Background(), "alice", "s3cret")
	require.NoError(t, err)

	// A longer TTL guarantees the second token differs even when both
	// logins land in the same second.
	longer := service.NewAuthService(tm, 2*time.Hour, repo, nil, zap.NewNop())
	second, _, err := longer.Login(context.Background(), "alice", "s3cret")
	require.NoError(t, err)
	require.NotEqual(t, first, second)

	// The second login overwrote the stored token: last writer wins.
	assert.Equal(t, second, repo.employees["alice"].Token)
	assert.NotEqual(t, first, repo.employees["alice"].Token)
}

func TestAuthService_ChangePassword(t *testing.T) {
	svc, _, repo := newAuthFixture(t)

	require.NoError(t, svc.ChangePassword(context.Background(), "alice", "s3cret", "n3w-pass"))

	match, err := auth.CheckPassword("n3w-pass", repo.employees["alice"].PasswordHash)
	require.NoError(t, err)
	assert.True(t, match)
}

func TestAuthService_ChangePasswordWrongCurrent(t *testing.T) {
	svc, _, _ := newAuthFixture(t)

	err := svc.ChangePassword(context.Background(), "alice", "wrong", "n3w-pass")
	assertStatus(t, err, http.StatusUnauthorized)
}
