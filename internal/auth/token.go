package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

const tokenIssuer = "BookStore"

// UnknownID is the sentinel returned by ID for tokens that fail verification
// or carry a non-numeric id claim.
const UnknownID = -1

var (
	// ErrInvalidArgument is returned by Issue for missing inputs.
	ErrInvalidArgument = errors.New("invalid token issuance argument")
	// ErrPersistence is returned by Issue when the token store write fails.
	ErrPersistence = errors.New("token persistence failed")
)

// TokenStore persists the single currently-valid token per employee.
type TokenStore interface {
	SetToken(ctx context.Context, username, token string) error
}

// TokenManager handles issuing and validating JWT tokens. The signing key is
// fixed at construction and shared by signing and verification.
type TokenManager struct {
	key          []byte
	store        TokenStore
	storeTimeout time.Duration
	parser       *jwt.Parser
}

// NewTokenManager builds a new manager. Issuing a token writes it through
// store, bounded by storeTimeout.
func NewTokenManager(key []byte, store TokenStore, storeTimeout time.Duration) *TokenManager {
	if storeTimeout <= 0 {
		storeTimeout = 5 * time.Second
	}
	return &TokenManager{
		key:          key,
		store:        store,
		storeTimeout: storeTimeout,
		// Expiry is checked by the authenticator against the exp claim, not
		// during parsing, so an expired token still verifies here.
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithoutClaimsValidation(),
		),
	}
}

// Issue builds and signs a token for the employee, then stores it as the
// employee's sole valid token. Storing overwrites whatever token was issued
// before: concurrent logins for the same account race and the last writer
// wins, which is the documented single-active-session policy.
func (tm *TokenManager) Issue(ctx context.Context, username string, id int, roles []string, expiresAt time.Time) (string, error) {
	switch {
	case username == "":
		return "", fmt.Errorf("%w: empty username", ErrInvalidArgument)
	case roles == nil:
		return "", fmt.Errorf("%w: nil roles", ErrInvalidArgument)
	case expiresAt.IsZero():
		return "", fmt.Errorf("%w: zero expiry", ErrInvalidArgument)
	case len(tm.key) == 0:
		return "", fmt.Errorf("%w: empty signing key", ErrInvalidArgument)
	}

	claims := jwt.RegisteredClaims{
		Issuer:    tokenIssuer,
		Subject:   username,
		Audience:  jwt.ClaimStrings{strings.Join(roles, ",")},
		ID:        strconv.Itoa(id),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(tm.key)
	if err != nil {
		return "", err
	}

	sctx, cancel := context.WithTimeout(ctx, tm.storeTimeout)
	defer cancel()
	if err := tm.store.SetToken(sctx, username, signed); err != nil {
		return "", fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	return signed, nil
}

// Verify reports whether the token is well formed and its signature checks
// out under the manager's key. Any parse or signature failure collapses to
// false; it never checks expiry.
func (tm *TokenManager) Verify(token string) bool {
	_, err := tm.parse(token)
	return err == nil
}

// Name returns the subject claim, or "" when verification fails.
func (tm *TokenManager) Name(token string) string {
	claims, err := tm.parse(token)
	if err != nil {
		return ""
	}
	return claims.Subject
}

// Roles returns the role set from the audience claim, or an empty slice when
// verification fails.
func (tm *TokenManager) Roles(token string) []string {
	claims, err := tm.parse(token)
	if err != nil {
		return []string{}
	}
	joined := strings.Join(claims.Audience, ",")
	if joined == "" {
		return []string{}
	}
	return strings.Split(joined, ",")
}

// ID returns the numeric id claim, or UnknownID when verification fails or
// the claim is not numeric.
func (tm *TokenManager) ID(token string) int {
	claims, err := tm.parse(token)
	if err != nil {
		return UnknownID
	}
	id, err := strconv.Atoi(claims.ID)
	if err != nil {
		return UnknownID
	}
	return id
}

// ExpiresAt returns the expiry claim, or the zero time when verification
// fails or the claim is absent.
func (tm *TokenManager) ExpiresAt(token string) time.Time {
	claims, err := tm.parse(token)
	if err != nil || claims.ExpiresAt == nil {
		return time.Time{}
	}
	return claims.ExpiresAt.Time
}

func (tm *TokenManager) parse(token string) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := tm.parser.ParseWithClaims(strings.TrimSpace(token), claims, func(*jwt.Token) (interface{}, error) {
		return tm.key, nil
	})
	if err != nil {
		return nil, err
	}
	if !parsed.Valid {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}
