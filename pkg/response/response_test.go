package response

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"shop-backend/pkg/apperr"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantMsg    string
	}{
		{
			name:       "ownership",
			err:        apperr.ErrUnauthorized,
			wantStatus: http.StatusUnauthorized,
			wantCode:   "Unauthorized",
			wantMsg:    apperr.ErrUnauthorized.Message,
		},
		{
			name:       "not found",
			err:        apperr.NotFound("product"),
			wantStatus: http.StatusNotFound,
			wantCode:   "NotFound",
			wantMsg:    "product not found",
		},
		{
			name:       "internal cause is hidden",
			err:        apperr.Internal(errors.New("dial tcp 10.0.0.1:27017"), "failed to list users"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "Internal",
			wantMsg:    apperr.ErrInternal.Message,
		},
		{
			name:       "plain error",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "Internal",
			wantMsg:    apperr.ErrInternal.Message,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			Error(c, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.True(t, c.IsAborted())

			var body map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.wantCode, body["error"])
			assert.Equal(t, tt.wantMsg, body["message"])
			assert.NotContains(t, w.Body.String(), "10.0.0.1")
		})
	}
}

func TestError_LogsKind(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(prev) })

	tests := []struct {
		err  error
		want string
	}{
		{apperr.ErrUnauthorized, "kind=unauthorized"},
		{apperr.NotFound("product"), "kind=not_found"},
		{apperr.Validation("invalid request body"), "kind=validation"},
		{errors.New("boom"), "kind=internal"},
	}
	for _, tt := range tests {
		buf.Reset()
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

		Error(c, tt.err)
		assert.Contains(t, buf.String(), tt.want)
	}
}
