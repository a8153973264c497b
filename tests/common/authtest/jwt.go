//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"hotel-inventory/internal/pkg/config"
	"hotel-inventory/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, operatorID uuid.UUID, name string) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	token, err := jwt.NewService(h.cfg.Secret, duration).GenerateToken(operatorID, name)
	require.NoError(t, err)
	return token
}

// OperatorToken issues a token for a fresh operator id.
func (h *JWTHelper) OperatorToken(t *testing.T) (uuid.UUID, string) {
	t.Helper()
	operatorID := uuid.New()
	return operatorID, h.GenerateToken(t, operatorID, "Front Desk")
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, operatorID uuid.UUID) string {
	t.Helper()
	token, err := jwt.NewService(h.cfg.Secret, time.Millisecond).GenerateToken(operatorID, "Front Desk")
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	return token
}
