//go:build unit

package middleware

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"coworking-booking/internal/domain/user"
	"coworking-booking/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLimiter struct {
	decision Decision
	err      error
	keys     []string
}

func (f *fakeLimiter) Allow(_ context.Context, key string) (Decision, error) {
	f.keys = append(f.keys, key)
	return f.decision, f.err
}

func newLimitedRouter(limiter Limiter, p *user.Principal) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	r.POST("/api/reservations", func(c *gin.Context) {
		if p != nil {
			c.Set(ctxPrincipalKey, *p)
		}
		c.Next()
	}, RateLimit(limiter, 20, logger), func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})
	return r
}

func post(r *gin.Engine) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/reservations", nil)
	req.RemoteAddr = "10.0.0.7:5555"
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestRateLimit(t *testing.T) {
	t.Run("allowed request carries the budget headers", func(t *testing.T) {
		l := &fakeLimiter{decision: Decision{Allowed: true, Remaining: 19}}
		rec := post(newLimitedRouter(l, &user.Principal{UserID: "u-1", Role: user.RoleClient, ClientID: "maria"}))

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "20", rec.Header().Get("X-RateLimit-Limit"))
		assert.Equal(t, "19", rec.Header().Get("X-RateLimit-Remaining"))
		assert.Equal(t, []string{"ratelimit:user:u-1:POST /api/reservations"}, l.keys)
	})

	t.Run("anonymous callers are keyed by address", func(t *testing.T) {
		l := &fakeLimiter{decision: Decision{Allowed: true, Remaining: 3}}
		post(newLimitedRouter(l, nil))

		assert.Equal(t, []string{"ratelimit:ip:10.0.0.7:POST /api/reservations"}, l.keys)
	})

	t.Run("empty bucket answers 429 with Retry-After", func(t *testing.T) {
		l := &fakeLimiter{decision: Decision{Allowed: false, RetryAfter: 1500 * time.Millisecond}}
		rec := post(newLimitedRouter(l, nil))

		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
		assert.Equal(t, "2", rec.Header().Get("Retry-After"))
		assert.JSONEq(t, `{"error":{"message":"Too many requests"},"detail":{"retryAfter":2}}`, rec.Body.String())
	})

	t.Run("limiter failure lets the request through", func(t *testing.T) {
		l := &fakeLimiter{err: errors.New("redis down")}
		rec := post(newLimitedRouter(l, nil))

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Empty(t, rec.Header().Get("X-RateLimit-Limit"))
	})

	t.Run("nil limiter disables limiting", func(t *testing.T) {
		rec := post(newLimitedRouter(nil, nil))

		assert.Equal(t, http.StatusCreated, rec.Code)
	})
}

// scripter answers EvalSha with a canned reply and records the call.
type scripter struct {
	reply []any
	err   error
	keys  []string
	args  []any
}

func (s *scripter) record(keys []string, args []any) *redis.Cmd {
	s.keys, s.args = keys, args
	return redis.NewCmdResult(s.reply, s.err)
}

func (s *scripter) Eval(_ context.Context, _ string, keys []string, args ...any) *redis.Cmd {
	return s.record(keys, args)
}

func (s *scripter) EvalSha(_ context.Context, _ string, keys []string, args ...any) *redis.Cmd {
	return s.record(keys, args)
}

func (s *scripter) EvalRO(_ context.Context, _ string, keys []string, args ...any) *redis.Cmd {
	return s.record(keys, args)
}

func (s *scripter) EvalShaRO(_ context.Context, _ string, keys []string, args ...any) *redis.Cmd {
	return s.record(keys, args)
}

func (s *scripter) ScriptExists(ctx context.Context, hashes ...string) *redis.BoolSliceCmd {
	return redis.NewBoolSliceResult(make([]bool, len(hashes)), nil)
}

func (s *scripter) ScriptLoad(ctx context.Context, script string) *redis.StringCmd {
	return redis.NewStringResult("", nil)
}

func TestRedisLimiter(t *testing.T) {
	cfg := config.RateLimitConfig{Capacity: 20, RefillPerSec: 0.5}
	fixed := time.UnixMilli(1_700_000_000_000)

	t.Run("passes the bucket parameters to the script", func(t *testing.T) {
		s := &scripter{reply: []any{int64(1), int64(19), int64(0)}}
		l := NewRedisLimiter(s, cfg)
		l.now = func() time.Time { return fixed }

		d, err := l.Allow(context.Background(), "k")

		require.NoError(t, err)
		assert.Equal(t, Decision{Allowed: true, Remaining: 19}, d)
		assert.Equal(t, []string{"k"}, s.keys)
		require.Len(t, s.args, 3)
		assert.Equal(t, fixed.UnixMilli(), s.args[0])
		assert.Equal(t, 20, s.args[1])
		assert.InDelta(t, 0.0005, s.args[2], 1e-12)
	})

	t.Run("denied draw reports the wait", func(t *testing.T) {
		s := &scripter{reply: []any{int64(0), int64(0), int64(1200)}}
		d, err := NewRedisLimiter(s, cfg).Allow(context.Background(), "k")

		require.NoError(t, err)
		assert.False(t, d.Allowed)
		assert.Equal(t, 1200*time.Millisecond, d.RetryAfter)
	})

	t.Run("malformed reply", func(t *testing.T) {
		s := &scripter{reply: []any{int64(1)}}
		_, err := NewRedisLimiter(s, cfg).Allow(context.Background(), "k")

		assert.ErrorIs(t, err, errUnexpectedScriptResult)
	})

	t.Run("redis error", func(t *testing.T) {
		s := &scripter{err: errors.New("connection refused")}
		_, err := NewRedisLimiter(s, cfg).Allow(context.Background(), "k")

		assert.Error(t, err)
	})
}
