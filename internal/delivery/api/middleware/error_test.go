package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "pricemap/internal/domain/errors"
	"pricemap/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   []string
		notInBody  []string
	}{
		{
			name:       "app error with fields",
			err:        errors.Wrap(domainerrors.NewShopsNearbyError(1, 20, 50), "resolve shop"),
			wantStatus: http.StatusConflict,
			wantBody:   []string{`"code":"SHOPS_ALREADY_NEARBY"`, `"nearbyCount":1`, `"limitMeters":50`},
		},
		{
			name:       "server error hides internals",
			err:        domainerrors.NewDatabaseExecuteError(errors.New("connection reset"), "insert shop"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   []string{`"code":"DATABASE_EXECUTE_FAILED"`},
			notInBody:  []string{"connection reset", "insert shop"},
		},
		{
			name:       "echo error",
			err:        echo.NewHTTPError(http.StatusNotFound, "Not Found"),
			wantStatus: http.StatusNotFound,
			wantBody:   []string{`"code":"HTTP_ERROR"`, `"message":"Not Found"`},
		},
		{
			name:       "unknown error",
			err:        errors.New("nil pointer somewhere"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   []string{`"code":"INTERNAL_ERROR"`},
			notInBody:  []string{"nil pointer"},
		},
	}

	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			m.HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)
			for _, s := range tt.wantBody {
				assert.Contains(t, rec.Body.String(), s)
			}
			for _, s := range tt.notInBody {
				assert.NotContains(t, rec.Body.String(), s)
			}
		})
	}
}
