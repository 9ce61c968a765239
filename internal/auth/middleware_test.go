package auth_test

import (
	"context"
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
	"github.com/spec-kit/hotel-service/internal/auth"
	"github.com/spec-kit/hotel-service/internal/domain"
	"github.com/spec-kit/hotel-service/internal/observability"
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

func newProtectedApp(tm *auth.TokenManager, repo *fakeEmployeeRepo) *fiber.App {
	app := fiber.New()
	httptransport.RegisterMiddlewares(app, zap.NewNop(), observability.NewMetrics(), 0)
	middleware := auth.NewAuthMiddleware(tm, repo, zap.NewNop())
	app.Get("/protected", middleware.Handle, func(c *fiber.Ctx) error {
		principal, _ := auth.PrincipalFromContext(c)
		return c.JSON(fiber.Map{"username": principal.Employee.Username})
	})
	return app
}

func requestWithHeader(header string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	return req
}

func TestAuthMiddleware_AcceptsValidToken(t *testing.T) {
	repo := newFakeEmployeeRepo(&domain.Employee{
		EmployeeID: 7, Username: "alice", Roles: []string{"admin", "staff"},
	})
	tm := auth.NewTokenManager([]byte("test-signing-key"), repo, 0)

	token, err := tm.Issue(context.Background(), "alice", 7, []string{"staff"}, time.Now().Add(time.Hour))
	require.NoError(t, err)

	app := newProtectedApp(tm, repo)
	resp, err := app.Test(requestWithHeader("Bearer " + token))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAuthMiddleware_BearerPrefixIsCaseInsensitive(t *testing.T) {
	repo := newFakeEmployeeRepo(&domain.Employee{
		EmployeeID: 7, Username: "alice", Roles: []string{"staff"},
	})
	tm := auth.NewTokenManager([]byte("test-signing-key"), repo, 0)

	token, err := tm.Issue(context.Background(), "alice", 7, []string{"staff"}, time.Now().Add(time.Hour))
	require.NoError(t, err)

	app := newProtectedApp(tm, repo)
	resp, err := app.Test(requestWithHeader("bEaReR " + token))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAuthMiddleware_RejectsBadHeaders(t *testing.T) {
	repo := newFakeEmployeeRepo(&domain.Employee{
		EmployeeID: 7, Username: "alice", Roles: []string{"staff"},
	})
	tm := auth.NewTokenManager([]byte("test-signing-key"), repo, 0)
	app := newProtectedApp(tm, repo)

	tests := []struct {
		name   string
		header string
	}{
		{"missing_header", ""},
		{"not_bearer", "Basic YWxpY2U6cw=="},
		{"no_token", "Bearer "},
		{"garbage_token", "Bearer not.a.token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := app.Test(requestWithHeader(tt.header))
			require.NoError(t, err)
			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		})
	}
}

func TestAuthMiddleware_RejectsExpiredToken(t *testing.T) {
	repo := newFakeEmployeeRepo(&domain.Employee{
		EmployeeID: 7, Username: "alice", Roles: []string{"staff"},
	})
	tm := auth.NewTokenManager([]byte("test-signing-key"), repo, 0)

	token, err := tm.Issue(context.Background(), "alice", 7, []string{"staff"}, time.Now().Add(-time.Minute))
	require.NoError(t, err)

	app := newProtectedApp(tm, repo)
	resp, err := app.Test(requestWithHeader("Bearer " + token))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_RejectsUnknownPrincipal(t *testing.T) {
	issuingRepo := newFakeEmployeeRepo(&domain.Employee{
		EmployeeID: 9, Username: "ghost", Roles: []string{"staff"},
	})
	tm := auth.NewTokenManager([]byte("test-signing-key"), issuingRepo, 0)

	token, err := tm.Issue(context.Background(), "ghost", 9, []string{"staff"}, time.Now().Add(time.Hour))
	require.NoError(t, err)

	// The serving repo has no such employee.
	repo := newFakeEmployeeRepo(&domain.Employee{
		EmployeeID: 7, Username: "alice", Roles: []string{"staff"},
	})
	app := newProtectedApp(tm, repo)
	resp, err := app.Test(requestWithHeader("Bearer " + token))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_RejectsIDMismatch(t *testing.T) {
	repo := newFakeEmployeeRepo(&domain.Employee{
		EmployeeID: 7, Username: "alice", Roles: []string{"staff"},
	})
	tm := auth.NewTokenManager([]byte("test-signing-key"), repo, 0)

	token, err := tm.Issue(context.Background(), "alice", 8, []string{"staff"}, time.Now().Add(time.Hour))
	require.NoError(t, err)

	app := newProtectedApp(tm, repo)
	resp, err := app.Test(requestWithHeader("Bearer " + token))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_RejectsRolesNotHeld(t *testing.T) {
	repo := newFakeEmployeeRepo(&domain.Employee{
		EmployeeID: 7, Username: "alice", Roles: []string{"staff"},
	})
	tm := auth.NewTokenManager([]byte("test-signing-key"), repo, 0)

	// Token claims admin, which the principal does not hold.
	token, err := tm.Issue(context.Background(), "alice", 7, []string{"admin", "staff"}, time.Now().Add(time.Hour))
	require.NoError(t, err)

	app := newProtectedApp(tm, repo)
	resp, err := app.Test(requestWithHeader("Bearer " + token))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_NewLoginSupersedesOldToken(t *testing.T) {
	repo := newFakeEmployeeRepo(&domain.Employee{
		EmployeeID: 7, Username: "alice", Roles: []string{"staff"},
	})
	tm := auth.NewTokenManager([]byte("test-signing-key"), repo, 0)

	first, err := tm.Issue(context.Background(), "alice", 7, []string{"staff"}, time.Now().Add(time.Hour))
	require.NoError(t, err)
	// Later expiry so the two tokens differ even within the same second.
	second, err := tm.Issue(context.Background(), "alice", 7, []string{"staff"}, time.Now().Add(2*time.Hour))
	require.NoError(t, err)
	require.NotEqual(t, first, second)

	app := newProtectedApp(tm, repo)

	resp, err := app.Test(requestWithHeader("Bearer " + second))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// The first token remains validly signed and unexpired, but the stored
	// token moved on.
	resp, err = app.Test(requestWithHeader("Bearer " + first))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestExtractBearerToken(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
		ok     bool
	}{
		{"plain", "Bearer abc.def.ghi", "abc.def.ghi", true},
		{"mixed_case", "bEaReR abc", "abc", true},
		{"inner_whitespace", "Bearer abc def", "abcdef", true},
		{"no_prefix", "abc.def.ghi", "", false},
		{"wrong_scheme", "Basic abc", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := auth.ExtractBearerToken(tt.header)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
