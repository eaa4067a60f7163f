package handler

import (
	"net/http"
	"slices"

	"pricemap/internal/delivery/api/middleware"
	"pricemap/internal/delivery/api/response"
	"pricemap/internal/domain/constants"
	"pricemap/internal/domain/geo"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// TestHandlerParams holds dependencies for TestHandler, injected by Fx.
type TestHandlerParams struct {
	fx.In

	Verifier *geo.Verifier
}

// TestHandler serves diagnostics used while calibrating clients. Its routes
// are only mounted when test routes are enabled.
type TestHandler struct {
	verifier *geo.Verifier
}

// NewTestHandler creates a new TestHandler instance
func NewTestHandler(params TestHandlerParams) *TestHandler {
	return &TestHandler{verifier: params.Verifier}
}

// TestVerifyLocation runs the proximity verifier on arbitrary coordinates and
// reports what a price report from that position would get.
func (h *TestHandler) TestVerifyLocation(c echo.Context) error {
	var userLat, userLon, shopLat, shopLon, accuracy float64
	binder := echo.QueryParamsBinder(c).
		MustFloat64("userLat", &userLat).
		MustFloat64("userLon", &userLon).
		MustFloat64("shopLat", &shopLat).
		MustFloat64("shopLon", &shopLon).
		Float64("accuracy", &accuracy)
	if err := binder.BindError(); err != nil {
		return queryError(err)
	}

	var gpsAccuracy *float64
	if c.QueryParam("accuracy") != "" {
		gpsAccuracy = &accuracy
	}

	result := h.verifier.Verify(userLat, userLon, shopLat, shopLon, gpsAccuracy)

	return response.Success(c, http.StatusOK, map[string]any{
		"accepted":        result.Accepted,
		"distance_meters": result.DistanceMeters,
		"limit_meters":    h.verifier.MaxReportDistance(),
		"message":         result.Message,
	})
}

// TestAuthMiddleware echoes the caller identity resolved by the auth middleware
func (h *TestHandler) TestAuthMiddleware(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "CONTEXT_ERROR", "User ID not found in context")
	}

	roles, _ := middleware.GetRoles(c)

	return response.Success(c, http.StatusOK, map[string]any{
		"user_id":  userID,
		"roles":    roles,
		"is_admin": slices.Contains(roles, constants.RoleAdmin),
	})
}
