package middleware_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SscSPs/cleaning_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubValidator struct {
	valid string
}

func (s stubValidator) ValidateToken(_ context.Context, token string) (string, error) {
	if token == s.valid {
		return "operator", nil
	}
	return "", errors.New("bad token")
}

func newRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))))
	r.Use(handlers...)
	r.GET("/ping", func(c *gin.Context) {
		operator, _ := middleware.GetOperatorFromContext(c)
		c.String(http.StatusOK, operator)
	})
	return r
}

func TestStructuredLoggingMiddleware_SetsRequestID(t *testing.T) {
	r := newRouter()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(middleware.RequestIDHeader, "5f0c6d8e-3c1a-4a8e-9d5b-2b9f0b1c7e11")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "5f0c6d8e-3c1a-4a8e-9d5b-2b9f0b1c7e11", w.Header().Get(middleware.RequestIDHeader))
}

func TestGetLoggerFromCtx_Fallback(t *testing.T) {
	assert.Equal(t, slog.Default(), middleware.GetLoggerFromCtx(context.Background()))

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := middleware.WithLogger(context.Background(), logger)
	assert.Same(t, logger, middleware.GetLoggerFromCtx(ctx))
}

func TestAuthMiddleware(t *testing.T) {
	r := newRouter(middleware.AuthMiddleware(stubValidator{valid: "good"}))

	tests := []struct {
		name   string
		header string
		status int
	}{
		{name: "missing header", header: "", status: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic good", status: http.StatusUnauthorized},
		{name: "bad token", header: "Bearer nope", status: http.StatusUnauthorized},
		{name: "valid token", header: "Bearer good", status: http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.status, w.Code)
			if tt.status == http.StatusOK {
				assert.Equal(t, "operator", w.Body.String())
			}
		})
	}
}

func TestRateLimit(t *testing.T) {
	_, err := middleware.NewRateLimiter("lots")
	assert.Error(t, err)

	lim, err := middleware.NewRateLimiter("2-M")
	require.NoError(t, err)
	r := newRouter(middleware.RateLimit(lim))

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

type recordingSink struct {
	enabled bool
	events  []string
	ids     []string
}

func (s *recordingSink) Enabled() bool { return s.enabled }

func (s *recordingSink) Enqueue(distinctID string, event string, _ map[string]any) {
	s.ids = append(s.ids, distinctID)
	s.events = append(s.events, event)
}

func TestUsageEvents(t *testing.T) {
	sink := &recordingSink{enabled: true}
	r := newRouter(middleware.UsageEvents(sink))
	r.GET("/api/entries/:id", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.POST("/api/entries/backfill-miles", func(c *gin.Context) { c.Status(http.StatusBadRequest) })

	for _, target := range []string{"/api/entries/abc", "/nowhere"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, target, nil))
	}
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/entries/backfill-miles", nil))

	assert.Equal(t, []string{"get_api_entries_id"}, sink.events, "failed and unmatched requests are not recorded")
	assert.Equal(t, []string{"local"}, sink.ids)
}

func TestUsageEvents_Disabled(t *testing.T) {
	sink := &recordingSink{}
	r := newRouter(middleware.UsageEvents(sink))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Empty(t, sink.events)
}
