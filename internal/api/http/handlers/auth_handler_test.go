package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/hotel-service/internal/api/http"
	"github.com/spec-kit/hotel-service/internal/api/http/handlers"
	"github.com/spec-kit/hotel-service/internal/auth"
	"github.com/spec-kit/hotel-service/internal/domain"
	"github.com/spec-kit/hotel-service/internal/observability"
	"github.com/spec-kit/hotel-service/internal/service"
)

type fakeEmployeeRepo struct {
	employees map[string]*domain.Employee
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

func newLoginApp(t *testing.T) (*fiber.App, *auth.TokenManager) {
	t.Helper()

	hash, err := auth.HashPassword("s3cret")
	require.NoError(t, err)

	repo := &fakeEmployeeRepo{employees: map[string]*domain.Employee{
		"alice": {EmployeeID: 7, Username: "alice", PasswordHash: hash, Roles: []string{"staff"}},
	}}

	tm := auth.NewTokenManager([]byte("test-signing-key"), repo, 0)
	authService := service.NewAuthService(tm, time.Hour, repo, nil, zap.NewNop())

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, zap.NewNop(), observability.NewMetrics(), 0)
	app.Post("/authentication", handlers.NewAuthHandler(authService).Login)
	return app, tm
}

func postLogin(t *testing.T, app *fiber.App, body any) *http.Response {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/authentication", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestLogin_Success(t *testing.T) {
	app, tm := newLoginApp(t)

	resp := postLogin(t, app, map[string]string{"username": "alice", "password": "s3cret"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		AuthToken string    `json:"authToken"`
		Expires   time.Time `json:"expires"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.NotEmpty(t, body.AuthToken)

	assert.Equal(t, "alice", tm.Name(body.AuthToken))
	assert.True(t, body.Expires.After(time.Now()))
}

func TestLogin_WrongPassword(t *testing.T) {
	app, _ := newLoginApp(t)

	resp := postLogin(t, app, map[string]string{"username": "alice", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	var body struct {
		Message    string `json:"message"`
		Code       int    `json:"code"`
		Challenges []any  `json:"challenges"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, http.StatusUnauthorized, body.Code)
	assert.NotEmpty(t, body.Message)
	assert.Empty(t, body.Challenges)
}

func TestLogin_UnknownUsername(t *testing.T) {
	app, _ := newLoginApp(t)

	resp := postLogin(t, app, map[string]string{"username": "mallory", "password": "s3cret"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLogin_MissingFields(t *testing.T) {
	app, _ := newLoginApp(t)

	resp := postLogin(t, app, map[string]string{"username": "alice"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
