package handler

import (
	"net/http"
	"testing"

	"pricemap/internal/domain/constants"
	"pricemap/internal/domain/geo"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTestHandler_VerifyLocation(t *testing.T) {
	h := NewTestHandler(TestHandlerParams{Verifier: geo.NewVerifier(geo.VerifierConfig{})})
	e := newTestEcho(uuid.Nil)
	e.GET("/test/verify", h.TestVerifyLocation)

	type verifyResult struct {
		Accepted       bool    `json:"accepted"`
		DistanceMeters float64 `json:"distance_meters"`
		LimitMeters    float64 `json:"limit_meters"`
		Message        string  `json:"message"`
	}

	t.Run("at the shop", func(t *testing.T) {
		rec := doRequest(e, http.MethodGet, "/test/verify?userLat=25.0330&userLon=121.5654&shopLat=25.0330&shopLon=121.5654", "")
		require.Equal(t, http.StatusOK, rec.Code)

		out := decodeData[verifyResult](t, rec)
		assert.True(t, out.Accepted)
		assert.Equal(t, geo.DefaultMaxReportDistanceMeters, out.LimitMeters)
		assert.Equal(t, "Location verified - You are at the shop", out.Message)
	})

	t.Run("too far", func(t *testing.T) {
		rec := doRequest(e, http.MethodGet, "/test/verify?userLat=25.0330&userLon=121.5654&shopLat=25.0400&shopLon=121.5654", "")
		require.Equal(t, http.StatusOK, rec.Code)

		out := decodeData[verifyResult](t, rec)
		assert.False(t, out.Accepted)
		assert.Greater(t, out.DistanceMeters, out.LimitMeters)
	})

	t.Run("low accuracy", func(t *testing.T) {
		rec := doRequest(e, http.MethodGet, "/test/verify?userLat=25.0330&userLon=121.5654&shopLat=25.0330&shopLon=121.5654&accuracy=500", "")
		require.Equal(t, http.StatusOK, rec.Code)

		assert.False(t, decodeData[verifyResult](t, rec).Accepted)
	})

	t.Run("missing coordinate", func(t *testing.T) {
		rec := doRequest(e, http.MethodGet, "/test/verify?userLat=25.0330&userLon=121.5654&shopLat=25.0330", "")

		env := requireErrorCode(t, rec, http.StatusBadRequest, "INVALID_QUERY")
		assert.Equal(t, "shopLon", env.Error.Details["field"])
	})
}

func TestTestHandler_AuthMiddleware(t *testing.T) {
	h := NewTestHandler(TestHandlerParams{Verifier: geo.NewVerifier(geo.VerifierConfig{})})
	caller := uuid.New()
	e := newTestEcho(caller, constants.RoleAdmin)
	e.GET("/test/auth", h.TestAuthMiddleware)

	rec := doRequest(e, http.MethodGet, "/test/auth", "")
	require.Equal(t, http.StatusOK, rec.Code)

	out := decodeData[map[string]any](t, rec)
	assert.Equal(t, caller.String(), out["user_id"])
	assert.Equal(t, true, out["is_admin"])
}
