package auth

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/hotel-service/internal/domain"
	"github.com/spec-kit/hotel-service/internal/repository"
	apperrors "github.com/spec-kit/hotel-service/pkg/util"
)

const principalKey = "auth_principal"

// Principal represents the authenticated employee.
type Principal struct {
	Employee *domain.Employee
}

// AuthMiddleware validates bearer tokens and loads the employee they were
// issued for.
type AuthMiddleware struct {
	tokens    *TokenManager
	employees repository.EmployeeRepository
	logger    *zap.Logger
}

// NewAuthMiddleware constructs middleware.
func NewAuthMiddleware(tokens *TokenManager, employees repository.EmployeeRepository, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, employees: employees, logger: logger}
}

// ExtractBearerToken strips a case-insensitive "Bearer " prefix and any
// whitespace from the header value. The second return is false when the
// header is not a bearer credential.
func ExtractBearerToken(header string) (string, bool) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return strings.ReplaceAll(parts[1], " ", ""), true
}

// Handle enforces authentication for protected routes. Every rejection maps
// to a generic 401; the distinguishing reason is only logged so the response
// leaks nothing about why the credential failed.
func (m *AuthMiddleware) Handle(c *fiber.Ctx) error {
	header := c.Get(fiber.HeaderAuthorization)
	if header == "" {
		return m.reject("missing authorization header")
	}

	token, ok := ExtractBearerToken(header)
	if !ok || token == "" {
		return m.reject("malformed authorization header")
	}

	if !m.tokens.Verify(token) {
		return m.reject("token signature invalid")
	}

	// Expiry is a separate check on the exp claim; strictly before, so a
	// token expiring this instant is already dead.
	expiresAt := m.tokens.ExpiresAt(token)
	if !time.Now().Before(expiresAt) {
		return m.reject("token expired", zap.Time("expired_at", expiresAt))
	}

	username := m.tokens.Name(token)
	roles := m.tokens.Roles(token)
	id := m.tokens.ID(token)
	if username == "" || len(roles) == 0 || id == UnknownID {
		return m.reject("token claims incomplete")
	}

	employee, err := m.employees.GetByUsername(c.Context(), username)
	if err != nil {
		if err == pgx.ErrNoRows {
			// Distinct from a bad credential internally, uniform 401
			// externally to avoid username enumeration.
			return m.reject("principal not found", zap.String("username", username))
		}
		return apperrors.MapError(err)
	}

	if employee.EmployeeID != id {
		return m.reject("token id does not match principal", zap.String("username", username))
	}
	if !employee.HasAllRoles(roles) {
		return m.reject("token roles exceed principal roles", zap.String("username", username))
	}
	if employee.Token != token {
		// A newer login overwrote the stored token; this one is superseded.
		return m.reject("token superseded by a newer login", zap.String("username", username))
	}

	c.Locals(principalKey, &Principal{Employee: employee})
	return c.Next()
}

func (m *AuthMiddleware) reject(reason string, fields ...zap.Field) error {
	if m.logger != nil {
		m.logger.Info("authentication rejected", append([]zap.Field{zap.String("reason", reason)}, fields...)...)
	}
	return apperrors.NewUnauthorized("authentication required")
}

// PrincipalFromContext retrieves the authenticated employee.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok
}
