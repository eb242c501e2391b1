//go:build unit

package middleware_test

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"testing"

	"coworking-booking/internal/handler/httperr"
	"coworking-booking/internal/handler/middleware"
	"coworking-booking/internal/pkg/errs"
	"coworking-booking/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func captureDefaultLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func newErrorRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.CustomRecovery(), middleware.ErrorHandler())
	r.GET("/conflict", func(c *gin.Context) {
		httperr.AbortWithError(c, http.StatusConflict, errors.New("taken"), "Room is already booked for this time",
			gin.H{"conflictingReservationId": "res-0"})
	})
	r.GET("/fail", func(c *gin.Context) {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.Wrap(errors.New("conn reset"), "insert reservation"),
			"Internal server error", nil)
	})
	r.GET("/public-only", func(c *gin.Context) {
		resp := httperr.Response{Status: http.StatusBadRequest}
		resp.Error.Message = "Invalid request"
		_ = c.Error(&gin.Error{Err: errors.New("bad"), Type: gin.ErrorTypePublic, Meta: resp})
	})
	r.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})
	return r
}

func TestErrorHandler(t *testing.T) {
	t.Run("client errors keep their body and are not logged", func(t *testing.T) {
		buf := captureDefaultLog(t)

		rec := httptest.PerformRequest(t, newErrorRouter(), http.MethodGet, "/conflict", nil, "")

		httptest.AssertErrorResponse(t, rec, http.StatusConflict, "already booked")
		assert.Contains(t, rec.Body.String(), `"conflictingReservationId":"res-0"`)
		assert.NotContains(t, buf.String(), "request failed")
	})

	t.Run("server errors are logged with their stack", func(t *testing.T) {
		buf := captureDefaultLog(t)

		rec := httptest.PerformRequest(t, newErrorRouter(), http.MethodGet, "/fail", nil, "")

		httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
		assert.NotContains(t, rec.Body.String(), "conn reset")
		assert.Contains(t, buf.String(), "request failed")
		assert.Contains(t, buf.String(), "insert reservation: conn reset")
		assert.Contains(t, buf.String(), `"stack"`)
	})

	t.Run("unwritten public errors are rendered", func(t *testing.T) {
		rec := httptest.PerformRequest(t, newErrorRouter(), http.MethodGet, "/public-only", nil, "")

		httptest.AssertErrorResponse(t, rec, http.StatusBadRequest, "Invalid request")
	})

	t.Run("panics become 500", func(t *testing.T) {
		captureDefaultLog(t)

		rec := httptest.PerformRequest(t, newErrorRouter(), http.MethodGet, "/panic", nil, "")

		httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
	})
}
