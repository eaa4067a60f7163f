package middleware

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"pricemap/config"
	deliverycontext "pricemap/internal/delivery/context"
	domainerrors "pricemap/internal/domain/errors"
	"pricemap/internal/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// redactedQueryKeys are query parameters carrying a reporter's position.
var redactedQueryKeys = []string{"lat", "lon", "latitude", "longitude", "userlat", "userlon"}

// LoggerMiddleware logs served requests. Every request is logged in debug
// mode; otherwise only server errors are.
type LoggerMiddleware struct {
	logger *slog.Logger
	debug  bool
}

// NewLoggerMiddleware creates a new logger middleware
func NewLoggerMiddleware(logger *slog.Logger, config *config.Config) *LoggerMiddleware {
	return &LoggerMiddleware{
		logger: logger,
		debug:  config.Env.Debug,
	}
}

// Handle processes request logging
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		status := responseStatus(c, err)
		if m.debug || status >= 500 {
			m.logRequest(c, start, status, err)
		}

		return err
	}
}

func (m *LoggerMiddleware) logRequest(c echo.Context, start time.Time, status int, err error) {
	req := c.Request()

	fields := []slog.Attr{
		slog.String("request_id", deliverycontext.GetRequestID(c)),
		slog.String("method", req.Method),
		slog.String("route", c.Path()),
		slog.String("uri", req.URL.Path),
		slog.Int("status", status),
		slog.Duration("latency", time.Since(start)),
		slog.String("remote_ip", c.RealIP()),
		slog.String("user_agent", req.UserAgent()),
	}

	if userID, ok := c.Get(string(deliverycontext.KeyUserID)).(uuid.UUID); ok {
		fields = append(fields, slog.String("user_id", userID.String()))
	}

	if req.URL.RawQuery != "" {
		fields = append(fields, slog.String("query", redactQuery(req.URL.Query())))
	}

	if err != nil {
		fields = append(fields, slog.Any("error", err))
	}

	logLevel := slog.LevelInfo
	switch {
	case status >= 500:
		logLevel = slog.LevelError
	case status >= 400:
		logLevel = slog.LevelWarn
	}

	m.logger.LogAttrs(req.Context(), logLevel, "HTTP Request", fields...)
}

// responseStatus predicts the status of a request whose error has not been
// rendered yet. The error handler runs after the middleware chain returns.
func responseStatus(c echo.Context, err error) int {
	if err == nil || c.Response().Committed {
		return c.Response().Status
	}

	if appErr, ok := errors.AsType[domainerrors.AppError](err); ok {
		return appErr.HTTPCode()
	}
	if httpErr, ok := errors.AsType[*echo.HTTPError](err); ok {
		return httpErr.Code
	}

	return http.StatusInternalServerError
}

// redactQuery re-encodes the query with coordinate values masked.
func redactQuery(values url.Values) string {
	for key := range values {
		lower := strings.ToLower(key)
		for _, redacted := range redactedQueryKeys {
			if lower == redacted {
				values.Set(key, "redacted")

				break
			}
		}
	}

	return values.Encode()
}
