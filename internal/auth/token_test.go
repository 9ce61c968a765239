package auth_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/hotel-service/internal/auth"
)

type memStore struct {
	mu     sync.Mutex
	tokens map[string]string
	err    error
}

func newMemStore() *memStore {
	return &memStore{tokens: make(map[string]string)}
}

func (s *memStore) SetToken(_ context.Context, username, token string) error {
	if s.err != nil {
		return s.err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[username] = token
	return nil
}

func (s *memStore) get(username string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tokens[username]
}

func TestTokenManager_IssueVerifyRoundtrip(t *testing.T) {
	store := newMemStore()
	tm := auth.NewTokenManager([]byte("test-signing-key"), store, 0)

	expiry := time.Now().Add(time.Hour)
	token, err := tm.Issue(context.Background(), "alice", 7, []string{"admin", "staff"}, expiry)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	assert.True(t, tm.Verify(token))
	assert.Equal(t, "alice", tm.Name(token))
	assert.Equal(t, 7, tm.ID(token))
	assert.ElementsMatch(t, []string{"admin", "staff"}, tm.Roles(token))
	// exp is carried with second precision.
	assert.WithinDuration(t, expiry, tm.ExpiresAt(token), time.Second)

	assert.Equal(t, token, store.get("alice"), "issuance must persist the token")
}

func TestTokenManager_VerifyWrongKey(t *testing.T) {
	store := newMemStore()
	tm := auth.NewTokenManager([]byte("key-one"), store, 0)
	other := auth.NewTokenManager([]byte("key-two"), store, 0)

	token, err := tm.Issue(context.Background(), "alice", 7, []string{"staff"}, time.Now().Add(time.Hour))
	require.NoError(t, err)

	assert.False(t, other.Verify(token))
	assert.Empty(t, other.Name(token))
	assert.Empty(t, other.Roles(token))
	assert.Equal(t, auth.UnknownID, other.ID(token))
	assert.True(t, other.ExpiresAt(token).IsZero())
}

func TestTokenManager_VerifyCorruptedSignature(t *testing.T) {
	store := newMemStore()
	tm := auth.NewTokenManager([]byte("test-signing-key"), store, 0)

	token, err := tm.Issue(context.Background(), "alice", 7, []string{"staff"}, time.Now().Add(time.Hour))
	require.NoError(t, err)

	// Flip a character in the middle of the signature segment.
	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	sig := []byte(parts[2])
	mid := len(sig) / 2
	if sig[mid] == 'A' {
		sig[mid] = 'B'
	} else {
		sig[mid] = 'A'
	}
	corrupted := parts[0] + "." + parts[1] + "." + string(sig)
	assert.False(t, tm.Verify(corrupted))
}

func TestTokenManager_VerifyMalformed(t *testing.T) {
	tm := auth.NewTokenManager([]byte("test-signing-key"), newMemStore(), 0)

	for _, token := range []string{"", "garbage", "a.b", "a.b.c"} {
		assert.False(t, tm.Verify(token), "token %q must not verify", token)
	}
}

func TestTokenManager_VerifyIgnoresExpiry(t *testing.T) {
	store := newMemStore()
	tm := auth.NewTokenManager([]byte("test-signing-key"), store, 0)

	token, err := tm.Issue(context.Background(), "alice", 7, []string{"staff"}, time.Now().Add(-time.Minute))
	require.NoError(t, err)

	// Signature is intact, so Verify passes; expiry is the authenticator's
	// job and is exposed via the claim.
	assert.True(t, tm.Verify(token))
	assert.True(t, tm.ExpiresAt(token).Before(time.Now()))
}

func TestTokenManager_IssueInvalidArguments(t *testing.T) {
	store := newMemStore()

	tests := []struct {
		name     string
		key      []byte
		username string
		roles    []string
		expiry   time.Time
	}{
		{"empty_username", []byte("key"), "", []string{"staff"}, time.Now().Add(time.Hour)},
		{"nil_roles", []byte("key"), "alice", nil, time.Now().Add(time.Hour)},
		{"zero_expiry", []byte("key"), "alice", []string{"staff"}, time.Time{}},
		{"empty_key", nil, "alice", []string{"staff"}, time.Now().Add(time.Hour)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm := auth.NewTokenManager(tt.key, store, 0)
			_, err := tm.Issue(context.Background(), tt.username, 7, tt.roles, tt.expiry)
			require.Error(t, err)
			assert.ErrorIs(t, err, auth.ErrInvalidArgument)
		})
	}
}

func TestTokenManager_IssueEmptyRoles(t *testing.T) {
	store := newMemStore()
	tm := auth.NewTokenManager([]byte("test-signing-key"), store, 0)

	token, err := tm.Issue(context.Background(), "alice", 7, []string{}, time.Now().Add(time.Hour))
	require.NoError(t, err)
	assert.True(t, tm.Verify(token))
	assert.Empty(t, tm.Roles(token))
}

func TestTokenManager_IssueStoreFailure(t *testing.T) {
	store := newMemStore()
	store.err = errors.New("connection reset")
	tm := auth.NewTokenManager([]byte("test-signing-key"), store, 0)

	_, err := tm.Issue(context.Background(), "alice", 7, []string{"staff"}, time.Now().Add(time.Hour))
	require.Error(t, err)
	assert.ErrorIs(t, err, auth.ErrPersistence)
}
