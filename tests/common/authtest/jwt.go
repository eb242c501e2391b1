//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"coworking-booking/internal/domain/user"
	"coworking-booking/internal/pkg/config"
	"coworking-booking/internal/pkg/jwt"

	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, p user.Principal) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	service := jwt.NewService(h.cfg.Secret, duration, h.cfg.Issuer)
	token, err := service.GenerateToken(p)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) AdminToken(t *testing.T) string {
	t.Helper()
	return h.GenerateToken(t, user.Principal{UserID: "admin", Role: user.RoleAdmin})
}

func (h *JWTHelper) ClientToken(t *testing.T, clientID string) string {
	t.Helper()
	return h.GenerateToken(t, user.Principal{UserID: clientID, Role: user.RoleClient, ClientID: clientID})
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, p user.Principal) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret, time.Millisecond, h.cfg.Issuer)
	token, err := service.GenerateToken(p)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	return token
}
