package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCorrelationIDMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name                 string
		requestCorrelationID string
		expectNewID          bool
	}{
		{
			name:        "new id generated when header not present",
			expectNewID: true,
		},
		{
			name:                 "existing id preserved",
			requestCorrelationID: "test-correlation-id-123",
		},
		{
			name:                 "id with unsafe characters replaced",
			requestCorrelationID: "abc\"><script>",
			expectNewID:          true,
		},
		{
			name:                 "overlong id replaced",
			requestCorrelationID: strings.Repeat("a", 129),
			expectNewID:          true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(CorrelationIDMiddleware())

			var fromGin, fromCtx string
			router.GET("/test", func(c *gin.Context) {
				fromGin = GetCorrelationID(c)
				fromCtx = CorrelationIDFromContext(c.Request.Context())
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if tt.requestCorrelationID != "" {
				req.Header.Set(CorrelationIDHeader, tt.requestCorrelationID)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			require.Equal(t, http.StatusOK, w.Code)
			got := w.Header().Get(CorrelationIDHeader)
			assert.Equal(t, got, fromGin)
			assert.Equal(t, got, fromCtx)

			if tt.expectNewID {
				_, err := uuid.Parse(got)
				assert.NoError(t, err)
				assert.NotEqual(t, tt.requestCorrelationID, got)
			} else {
				assert.Equal(t, tt.requestCorrelationID, got)
			}
		})
	}
}

func TestLogWithCorrelationID(t *testing.T) {
	ctx := WithCorrelationID(context.Background(), "corr-1")
	assert.Equal(t, "corr-1", CorrelationIDFromContext(ctx))
	assert.NotNil(t, LogWithCorrelationID(ctx))
	assert.Equal(t, "", CorrelationIDFromContext(context.Background()))
}
