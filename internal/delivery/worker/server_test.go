package worker

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pricemap/config"
	"pricemap/internal/delivery/worker/handler"
	mockUsecase "pricemap/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newTestWorkerEcho(t *testing.T) *echo.Echo {
	t.Helper()

	cfg := &config.Config{}
	cfg.Env.ServiceName = "pricemap-auditworker"
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	push := handler.NewPushHandler(handler.PushHandlerParams{
		Config:  cfg,
		Logger:  logger,
		AuditUC: mockUsecase.NewMockShopAuditUsecase(t),
	})

	return newEcho(cfg, logger, push)
}

func TestWorkerServer_Health(t *testing.T) {
	e := newTestWorkerEcho(t)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "pricemap-auditworker")
}

func TestWorkerServer_PushBodyLimit(t *testing.T) {
	e := newTestWorkerEcho(t)

	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(strings.Repeat("x", 128*1024)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestWorkerServer_MalformedPushRejected(t *testing.T) {
	e := newTestWorkerEcho(t)

	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader("{not json"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
