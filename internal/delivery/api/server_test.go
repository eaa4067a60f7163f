package api

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pricemap/config"
	deliverycontext "pricemap/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServerEcho(t *testing.T, origins ...string) *echo.Echo {
	t.Helper()

	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "1KB"
	cfg.HTTP.AllowOrigins = origins

	e := newEcho(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	e.GET("/api/v1/shops/:id", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"name": strings.Repeat("shop ", 100)})
	})
	e.GET("/api/v1/shops/:id/qr", func(c echo.Context) error {
		return c.Blob(http.StatusOK, "image/png", []byte{0x89, 'P', 'N', 'G'})
	})
	e.POST("/api/v1/reports", func(c echo.Context) error {
		return c.NoContent(http.StatusCreated)
	})
	e.GET("/panic", func(c echo.Context) error {
		panic("boom")
	})

	return e
}

func TestNewEcho_CORS(t *testing.T) {
	e := newTestServerEcho(t, "https://map.example.com")

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/reports", nil)
	req.Header.Set(echo.HeaderOrigin, "https://map.example.com")
	req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodPost)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "https://map.example.com", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
	assert.Contains(t, rec.Header().Get(echo.HeaderAccessControlAllowHeaders), echo.HeaderAuthorization)
}

func TestNewEcho_Gzip(t *testing.T) {
	e := newTestServerEcho(t)

	t.Run("json compressed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/shops/1", nil)
		req.Header.Set(echo.HeaderAcceptEncoding, "gzip")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "gzip", rec.Header().Get(echo.HeaderContentEncoding))
	})

	t.Run("qr left alone", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/shops/1/qr", nil)
		req.Header.Set(echo.HeaderAcceptEncoding, "gzip")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, rec.Header().Get(echo.HeaderContentEncoding))
	})
}

func TestNewEcho_BodyLimitAndRecover(t *testing.T) {
	e := newTestServerEcho(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/reports", strings.NewReader(strings.Repeat("x", 4096)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/panic", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(deliverycontext.HeaderXRequestID))
}
