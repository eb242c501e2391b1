//go:build unit

package httperr_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"coworking-booking/internal/handler/httperr"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAbortWithError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("records a public error carrying the response", func(t *testing.T) {
		rec := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(rec)
		cause := errors.New("conn reset")

		httperr.AbortWithError(c, http.StatusInternalServerError, cause, "Internal server error", nil)

		require.Len(t, c.Errors, 1)
		recorded := c.Errors[0]
		assert.True(t, recorded.IsType(gin.ErrorTypePublic))
		assert.ErrorIs(t, recorded.Err, cause)

		resp, ok := recorded.Meta.(httperr.Response)
		require.True(t, ok, "meta should hold the response payload")
		assert.Equal(t, http.StatusInternalServerError, resp.Status)
		assert.Equal(t, "Internal server error", resp.Error.Message)

		assert.True(t, c.IsAborted())
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"error":{"message":"Internal server error"}}`, rec.Body.String())
	})

	t.Run("nil error panics", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		assert.Panics(t, func() {
			httperr.AbortWithError(c, http.StatusBadRequest, nil, "bad", nil)
		})
	})
}
