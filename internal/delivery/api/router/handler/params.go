package handler

import (
	"net/http"

	"pricemap/internal/delivery/api/validator"
	domainerrors "pricemap/internal/domain/errors"
	"pricemap/internal/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// requestError is a 400 raised by the handlers before a usecase is called.
type requestError struct {
	*domainerrors.BaseError
	fields map[string]any
}

func (e *requestError) Unwrap() error {
	return e.BaseError
}

// Fields implements domainerrors.FieldedError.
func (e *requestError) Fields() map[string]any {
	return e.fields
}

func invalidRequest(code, message string, fields map[string]any) error {
	return &requestError{
		BaseError: domainerrors.NewBaseError(http.StatusBadRequest, code, message, ""),
		fields:    fields,
	}
}

func uuidParam(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, invalidRequest("INVALID_ID", "Invalid "+name+" format", map[string]any{name: c.Param(name)})
	}

	return id, nil
}

// decimalQuery parses a decimal query parameter. An absent parameter yields def.
func decimalQuery(c echo.Context, name string, def decimal.Decimal) (decimal.Decimal, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return def, nil
	}

	value, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, invalidRequest("INVALID_QUERY", "Invalid "+name+" value", map[string]any{name: raw})
	}

	return value, nil
}

// queryError converts an echo.ValueBinder failure.
func queryError(err error) error {
	var bindErr *echo.BindingError
	if errors.As(err, &bindErr) {
		return invalidRequest("INVALID_QUERY", "Invalid query parameter", map[string]any{
			"field":  bindErr.Field,
			"values": bindErr.Values,
		})
	}

	return invalidRequest("INVALID_QUERY", "Invalid query parameter", nil)
}

// bindBody binds the request body and runs its validate tags.
func bindBody(c echo.Context, req any, message string) error {
	if err := c.Bind(req); err != nil {
		return invalidRequest("INVALID_INPUT", message, nil)
	}

	if err := c.Validate(req); err != nil {
		fields := make(map[string]any)
		for field, tag := range validator.FieldErrors(err) {
			fields[field] = tag
		}

		return invalidRequest(domainerrors.ErrValidationFailed.ErrorCode(), domainerrors.ErrValidationFailed.Message(), fields)
	}

	return nil
}
