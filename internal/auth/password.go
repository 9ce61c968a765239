package auth

import (
	"crypto/rand"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

// PBKDF2 parameters. These match the stored password records, so changing
// them invalidates every existing hash.
const (
	hashIterations = 20000
	saltLength     = 32
	keyLength      = 32
)

// ErrMalformedHash indicates a stored password value not in salt$hash form.
var ErrMalformedHash = errors.New("stored password must have the form 'salt$hash'")

// HashPassword computes a salted PBKDF2-HMAC-SHA512 hash of the password,
// encoded as base64(salt)$base64(hash). Empty passwords are not supported.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", errors.New("empty passwords are not supported")
	}

	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	hash := pbkdf2.Key([]byte(password), salt, hashIterations, keyLength, sha512.New)
	return base64.StdEncoding.EncodeToString(salt) + "$" + base64.StdEncoding.EncodeToString(hash), nil
}

// CheckPassword reports whether the plaintext password matches the stored
// salted hash.
func CheckPassword(password, stored string) (bool, error) {
	parts := strings.SplitN(stored, "$", 2)
	if len(parts) != 2 {
		return false, ErrMalformedHash
	}

	salt, err := base64.StdEncoding.DecodeString(parts[0])
	if err != nil {
		return false, ErrMalformedHash
	}
	expected, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return false, ErrMalformedHash
	}

	hash := pbkdf2.Key([]byte(password), salt, hashIterations, len(expected), sha512.New)
	return subtle.ConstantTimeCompare(hash, expected) == 1, nil
}
