package errors

import (
	"fmt"
	"net/http"
	"time"

	"pricemap/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// FieldedError is implemented by errors that carry structured details a client can render,
// for example the measured distance of a proximity rejection.
type FieldedError interface {
	Fields() map[string]any
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// Is matches any BaseError with the same error code, so customised copies
// still satisfy errors.Is against the predefined values below.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails returns a copy carrying detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// WithMessage returns a copy with a user-facing message replacing the default one
func (e *BaseError) WithMessage(message string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   message,
		details:   e.details,
	}
}

// Predefined error types
var (
	// Validation errors, rejected before any store access
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	ErrInvalidPrice = NewBaseError(
		http.StatusBadRequest,
		"INVALID_PRICE",
		"Price must be greater than 0",
		"",
	)

	ErrInvalidCoordinates = NewBaseError(
		http.StatusBadRequest,
		"INVALID_COORDINATES",
		"Invalid coordinates provided",
		"",
	)

	ErrSuspiciousLocation = NewBaseError(
		http.StatusBadRequest,
		"SUSPICIOUS_LOCATION",
		"Suspicious location detected, please enable accurate GPS and try again",
		"",
	)

	ErrGPSAccuracyTooLow = NewBaseError(
		http.StatusBadRequest,
		"GPS_ACCURACY_TOO_LOW",
		"GPS accuracy is too low",
		"",
	)

	ErrProductInactive = NewBaseError(
		http.StatusBadRequest,
		"PRODUCT_INACTIVE",
		"Product is not active",
		"",
	)

	// Not found errors
	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"Product not found",
		"",
	)

	ErrShopNotFound = NewBaseError(
		http.StatusNotFound,
		"SHOP_NOT_FOUND",
		"Shop not found",
		"",
	)

	ErrReportNotFound = NewBaseError(
		http.StatusNotFound,
		"REPORT_NOT_FOUND",
		"Price report not found",
		"",
	)

	ErrPriceAverageNotFound = NewBaseError(
		http.StatusNotFound,
		"PRICE_AVERAGE_NOT_FOUND",
		"No price average for this product",
		"",
	)

	// Proximity errors
	ErrTooFarFromShop = NewBaseError(
		http.StatusUnprocessableEntity,
		"TOO_FAR_FROM_SHOP",
		"You are too far from the shop to report prices",
		"",
	)

	ErrShopsAlreadyNearby = NewBaseError(
		http.StatusConflict,
		"SHOPS_ALREADY_NEARBY",
		"Shops already exist nearby, use search first",
		"",
	)

	// Ownership and window errors
	ErrReportOwnershipViolation = NewBaseError(
		http.StatusForbidden,
		"REPORT_OWNERSHIP_VIOLATION",
		"You can only modify your own price reports",
		"",
	)

	ErrModifyWindowExpired = NewBaseError(
		http.StatusForbidden,
		"MODIFY_WINDOW_EXPIRED",
		"Price reports can only be modified within 24 hours of reporting",
		"",
	)

	// Shop moderation errors
	ErrAlreadyDeclared = NewBaseError(
		http.StatusConflict,
		"ALREADY_DECLARED",
		"You have already declared this shop",
		"",
	)

	ErrInvalidStatusTransition = NewBaseError(
		http.StatusConflict,
		"INVALID_STATUS_TRANSITION",
		"Shop status change is not allowed",
		"",
	)

	// Dependency errors
	ErrCatalogUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"CATALOG_UNAVAILABLE",
		"Product catalog is unavailable, please try again later",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Database transaction failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)
)

// ProximityError is a rejection caused by the reporter's position. It carries
// the measured distance and the limit so clients can render them on a map.
type ProximityError struct {
	*BaseError
	DistanceMeters float64
	LimitMeters    float64
	NearbyCount    int
}

// NewTooFarError builds the rejection for a report claimed against a shop out of range.
func NewTooFarError(distance, limit float64) *ProximityError {
	msg := fmt.Sprintf("You are %.1fm away from the shop. You must be within %.0fm to report prices.", distance, limit)

	return &ProximityError{
		BaseError:      ErrTooFarFromShop.WithMessage(msg),
		DistanceMeters: distance,
		LimitMeters:    limit,
	}
}

// NewShopsNearbyError builds the rejection for a creation attempt next to existing shops.
// distance is the distance to the closest one.
func NewShopsNearbyError(count int, distance, radius float64) *ProximityError {
	msg := fmt.Sprintf("%d shop(s) already exist nearby, use search first", count)

	return &ProximityError{
		BaseError:      ErrShopsAlreadyNearby.WithMessage(msg),
		DistanceMeters: distance,
		LimitMeters:    radius,
		NearbyCount:    count,
	}
}

// Unwrap exposes the base error for errors.Is.
func (e *ProximityError) Unwrap() error {
	return e.BaseError
}

// Fields implements FieldedError.
func (e *ProximityError) Fields() map[string]any {
	fields := map[string]any{
		"distanceMeters": e.DistanceMeters,
		"limitMeters":    e.LimitMeters,
	}
	if e.NearbyCount > 0 {
		fields["nearbyCount"] = e.NearbyCount
	}

	return fields
}

// WindowError is returned when an owner action arrives after the modification window closed.
type WindowError struct {
	*BaseError
	Window     time.Duration
	ReportedAt time.Time
}

// NewWindowError builds the rejection for a report reported at reportedAt.
func NewWindowError(window time.Duration, reportedAt time.Time) *WindowError {
	msg := fmt.Sprintf("Price reports can only be modified within %s of reporting", humanWindow(window))

	return &WindowError{
		BaseError:  ErrModifyWindowExpired.WithMessage(msg),
		Window:     window,
		ReportedAt: reportedAt,
	}
}

// Unwrap exposes the base error for errors.Is.
func (e *WindowError) Unwrap() error {
	return e.BaseError
}

// Fields implements FieldedError.
func (e *WindowError) Fields() map[string]any {
	return map[string]any{
		"windowHours": e.Window.Hours(),
		"reportedAt":  e.ReportedAt.UTC().Format(time.RFC3339),
		"closedAt":    e.ReportedAt.Add(e.Window).UTC().Format(time.RFC3339),
	}
}

func humanWindow(window time.Duration) string {
	if window%time.Hour == 0 {
		return fmt.Sprintf("%d hours", int(window.Hours()))
	}

	return window.String()
}

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap returns the driver error.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
