package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"pricemap/config"
	deliverycontext "pricemap/internal/delivery/context"
	domainerrors "pricemap/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_Process(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		keepSent bool
	}{
		{name: "generated when missing", header: "", keepSent: false},
		{name: "client id kept", header: "abc-123", keepSent: true},
		{name: "id with spaces replaced", header: "abc 123", keepSent: false},
		{name: "oversized id replaced", header: strings.Repeat("a", maxRequestIDLength+1), keepSent: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			e.Use(NewRequestIDMiddleware(slog.Default()).Process)

			var fromCtx string
			e.GET("/", func(c echo.Context) error {
				fromCtx = deliverycontext.GetRequestIDFromContext(c.Request().Context())
				assert.NotNil(t, deliverycontext.GetLogger(c.Request().Context()))

				return c.NoContent(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.header)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			got := rec.Header().Get(deliverycontext.HeaderXRequestID)
			require.NotEmpty(t, got)
			assert.Equal(t, got, fromCtx)
			if tt.keepSent {
				assert.Equal(t, tt.header, got)
			} else {
				assert.NotEqual(t, tt.header, got)
			}
		})
	}
}

func TestLoggerMiddleware_Handle(t *testing.T) {
	newEcho := func(debug bool, buf *bytes.Buffer) *echo.Echo {
		cfg := &config.Config{}
		cfg.Env.Debug = debug
		logger := slog.New(slog.NewTextHandler(buf, nil))

		e := echo.New()
		e.Use(NewLoggerMiddleware(logger, cfg).Handle)
		e.GET("/ok", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
		e.GET("/fail", func(c echo.Context) error { return domainerrors.ErrInternalError })

		return e
	}

	t.Run("quiet outside debug", func(t *testing.T) {
		var buf bytes.Buffer
		e := newEcho(false, &buf)

		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ok", nil))

		assert.Empty(t, buf.String())
	})

	t.Run("server errors always logged", func(t *testing.T) {
		var buf bytes.Buffer
		e := newEcho(false, &buf)

		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/fail", nil))

		assert.Contains(t, buf.String(), "level=ERROR")
		assert.Contains(t, buf.String(), "status=500")
	})

	t.Run("coordinates redacted", func(t *testing.T) {
		var buf bytes.Buffer
		e := newEcho(true, &buf)

		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ok?lat=25.03&lon=121.56&radius=500", nil))

		out := buf.String()
		assert.Contains(t, out, "route=/ok")
		assert.NotContains(t, out, "25.03")
		assert.Contains(t, out, "radius=500")
	})
}

func TestRedactQuery(t *testing.T) {
	values := url.Values{
		"Latitude":  {"1.5"},
		"longitude": {"2.5"},
		"productId": {"7"},
	}

	out, err := url.ParseQuery(redactQuery(values))
	require.NoError(t, err)

	assert.Equal(t, "redacted", out.Get("Latitude"))
	assert.Equal(t, "redacted", out.Get("longitude"))
	assert.Equal(t, "7", out.Get("productId"))
}
