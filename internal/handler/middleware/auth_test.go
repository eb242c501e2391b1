//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	nethttptest "net/http/httptest"
	"testing"

	"coworking-booking/internal/domain/user"
	"coworking-booking/internal/handler/middleware"
	"coworking-booking/internal/pkg/cookie"
	"coworking-booking/tests/common/httptest"
	usecasemock "coworking-booking/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newAuthRouter(t *testing.T) (*gin.Engine, *usecasemock.MockTokenValidator) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	validator := usecasemock.NewMockTokenValidator(ctrl)
	auth := middleware.NewAuthMiddleware(validator)

	r := gin.New()
	echo := func(c *gin.Context) {
		p, ok := middleware.GetPrincipal(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"userId": p.UserID, "clientId": p.ClientID, "role": p.Role.String()})
	}
	r.GET("/me", auth.RequireAuth(), echo)
	r.GET("/admin", auth.RequireAuth(), auth.RequireAdmin(), echo)
	r.GET("/broken", auth.RequireAdmin(), echo)
	return r, validator
}

func TestRequireAuth(t *testing.T) {
	maria := user.Principal{UserID: "u-1", Role: user.RoleClient, ClientID: "maria"}

	t.Run("bearer header", func(t *testing.T) {
		r, v := newAuthRouter(t)
		v.EXPECT().ValidateToken("tok").Return(maria, nil)

		rec := httptest.PerformRequest(t, r, http.MethodGet, "/me", nil, "tok")

		var body map[string]string
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		assert.Equal(t, "maria", body["clientId"])
		assert.Equal(t, "client", body["role"])
	})

	t.Run("cookie fallback", func(t *testing.T) {
		r, v := newAuthRouter(t)
		v.EXPECT().ValidateToken("cookie-tok").Return(maria, nil)

		rec := httptest.PerformRequestWithCookies(t, r, http.MethodGet, "/me", nil,
			[]*http.Cookie{{Name: cookie.AccessTokenCookieName, Value: "cookie-tok"}}, "")

		httptest.AssertSuccessResponse(t, rec, http.StatusOK, nil)
	})

	t.Run("header wins over cookie", func(t *testing.T) {
		r, v := newAuthRouter(t)
		v.EXPECT().ValidateToken("header-tok").Return(maria, nil)

		rec := httptest.PerformRequestWithCookies(t, r, http.MethodGet, "/me", nil,
			[]*http.Cookie{{Name: cookie.AccessTokenCookieName, Value: "cookie-tok"}}, "header-tok")

		httptest.AssertSuccessResponse(t, rec, http.StatusOK, nil)
	})

	t.Run("missing token", func(t *testing.T) {
		r, _ := newAuthRouter(t)

		req := nethttptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Basic abc")
		rec := nethttptest.NewRecorder()
		r.ServeHTTP(rec, req)

		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Access token required")
	})

	t.Run("rejected token", func(t *testing.T) {
		r, v := newAuthRouter(t)
		v.EXPECT().ValidateToken("bad").Return(user.Principal{}, errors.New("token expired"))

		rec := httptest.PerformRequest(t, r, http.MethodGet, "/me", nil, "bad")

		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Invalid or expired token")
	})
}

func TestRequireAdmin(t *testing.T) {
	t.Run("admin passes", func(t *testing.T) {
		r, v := newAuthRouter(t)
		v.EXPECT().ValidateToken("tok").Return(user.Principal{UserID: "root", Role: user.RoleAdmin}, nil)

		rec := httptest.PerformRequest(t, r, http.MethodGet, "/admin", nil, "tok")

		httptest.AssertSuccessResponse(t, rec, http.StatusOK, nil)
	})

	t.Run("client is forbidden", func(t *testing.T) {
		r, v := newAuthRouter(t)
		v.EXPECT().ValidateToken("tok").Return(user.Principal{UserID: "u-1", Role: user.RoleClient, ClientID: "maria"}, nil)

		rec := httptest.PerformRequest(t, r, http.MethodGet, "/admin", nil, "tok")

		httptest.AssertErrorResponse(t, rec, http.StatusForbidden, "Insufficient permissions")
	})

	t.Run("without RequireAuth", func(t *testing.T) {
		r, _ := newAuthRouter(t)

		rec := httptest.PerformRequest(t, r, http.MethodGet, "/broken", nil, "")

		httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "")
	})
}
