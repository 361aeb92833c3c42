//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"kennelbook/internal/pkg/config"
	pkgjwt "kennelbook/internal/pkg/jwt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// JWTHelper mints breeder-tooling tokens the way the main application's
// login flow would, so protected endpoints can be exercised in tests.
type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, breederID uuid.UUID) string {
	t.Helper()
	return h.signToken(t, breederID, time.Now().Add(15*time.Minute))
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, breederID uuid.UUID) string {
	t.Helper()
	return h.signToken(t, breederID, time.Now().Add(-time.Minute))
}

func (h *JWTHelper) signToken(t *testing.T, breederID uuid.UUID, expiresAt time.Time) string {
	t.Helper()
	claims := pkgjwt.Claims{
		BreederID: breederID,
		Role:      "breeder",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   breederID.String(),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-time.Second)),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(h.cfg.Secret))
	require.NoError(t, err)
	return token
}
