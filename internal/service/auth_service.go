package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/hotel-service/internal/auth"
	"github.com/spec-kit/hotel-service/internal/events"
	"github.com/spec-kit/hotel-service/internal/repository"
	apperrors "github.com/spec-kit/hotel-service/pkg/util"
)

// AuthService coordinates the login flow: credential verification against
// the stored PBKDF2 hash, then token issuance. Issuing overwrites the
// employee's stored token, so logging in invalidates any earlier session.
type AuthService struct {
	employees  repository.EmployeeRepository
	tokens     *auth.TokenManager
	tokenTTL   time.Duration
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewAuthService builds the service.
func NewAuthService(tokens *auth.TokenManager, tokenTTL time.Duration, employees repository.EmployeeRepository, dispatcher events.Dispatcher, logger *zap.Logger) *AuthService {
	return &AuthService{
		employees:  employees,
		tokens:     tokens,
		tokenTTL:   tokenTTL,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// Login authenticates an employee and issues a fresh token. Unknown
// usernames and bad passwords both come back as the same unauthorized error
// so the response does not reveal which part was wrong.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, time.Time, error) {
	employee, err := s.employees.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			s.logger.Info("login failed", zap.String("username", username), zap.String("reason", "unknown username"))
			return "", time.Time{}, apperrors.NewUnauthorized("invalid credentials")
		}
		return "", time.Time{}, apperrors.NewPersistenceError(err)
	}

	match, err := auth.CheckPassword(password, employee.PasswordHash)
	if err != nil {
		return "", time.Time{}, apperrors.NewInternalError(err)
	}
	if !match {
		s.logger.Info("login failed", zap.String("username", username), zap.String("reason", "password mismatch"))
		return "", time.Time{}, apperrors.NewUnauthorized("invalid credentials")
	}

	expiresAt := time.Now().Add(s.tokenTTL)
	roles := employee.Roles
	if roles == nil {
		roles = []string{}
	}

	token, err := s.tokens.Issue(ctx, employee.Username, employee.EmployeeID, roles, expiresAt)
	if err != nil {
		if errors.Is(err, auth.ErrPersistence) {
			return "", time.Time{}, apperrors.NewPersistenceError(err)
		}
		return "", time.Time{}, apperrors.NewInternalError(err)
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventEmployeeLoggedIn,
			Actor:     employee.Username,
			Timestamp: time.Now(),
			Payload: events.EmployeeLoggedInPayload{
				EmployeeID: employee.EmployeeID,
				Username:   employee.Username,
				TokenExp:   expiresAt,
			},
		})
	}

	return token, expiresAt, nil
}

// ChangePassword verifies the current password before storing a new hash.
func (s *AuthService) ChangePassword(ctx context.Context, username, currentPassword, newPassword string) error {
	employee, err := s.employees.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewUnauthorized("invalid credentials")
		}
		return apperrors.NewPersistenceError(err)
	}

	match, err := auth.CheckPassword(currentPassword, employee.PasswordHash)
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	if !match {
		return apperrors.NewUnauthorized("invalid credentials")
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return apperrors.NewValidationError(err.Error(), nil)
	}

	if err := s.employees.UpdatePassword(ctx, username, hash); err != nil {
		return apperrors.NewPersistenceError(err)
	}
	return nil
}
