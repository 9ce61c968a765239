package auth

import (
	"crypto/rand"

	"go.uber.org/zap"

	"github.com/spec-kit/hotel-service/internal/config"
)

// LoadSigningKey returns the HMAC key used to sign and verify tokens. The
// configured secret is preferred so tokens survive restarts; without one a
// random per-process key is generated and every outstanding token dies with
// the process.
func LoadSigningKey(cfg config.AuthConfig, logger *zap.Logger) []byte {
	if cfg.JWTSecret != "" {
		return []byte(cfg.JWTSecret)
	}

	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		logger.Fatal("failed to generate signing key", zap.Error(err))
	}
	logger.Warn("AUTH_JWT_SECRET not set; generated ephemeral signing key, tokens will not survive a restart")
	return key
}
