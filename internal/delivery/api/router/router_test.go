package router

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"pricemap/config"
	"pricemap/internal/delivery/api/middleware"
	"pricemap/internal/delivery/api/router/handler"
	"pricemap/internal/domain/geo"
	"pricemap/internal/domain/service"
	mockService "pricemap/internal/mocks/service"
	mockUsecase "pricemap/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newTestRouter(t *testing.T, tokenSvc service.TokenService, cfg *config.Config) *echo.Echo {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	shopUC := mockUsecase.NewMockShopUsecase(t)
	priceUC := mockUsecase.NewMockPriceUsecase(t)

	r := NewRouter(RouterParams{
		ShopHandler:    handler.NewShopHandler(handler.ShopHandlerParams{ShopUC: shopUC, Logger: logger}),
		ReportHandler:  handler.NewReportHandler(handler.ReportHandlerParams{ReportUC: mockUsecase.NewMockReportUsecase(t), Logger: logger}),
		PriceHandler:   handler.NewPriceHandler(handler.PriceHandlerParams{PriceUC: priceUC}),
		AdminHandler:   handler.NewAdminHandler(handler.AdminHandlerParams{ShopUC: shopUC, PriceUC: priceUC, Logger: logger}),
		TestHandler:    handler.NewTestHandler(handler.TestHandlerParams{Verifier: geo.NewVerifier(geo.VerifierConfig{})}),
		AuthMiddleware: middleware.NewAuthMiddleware(middleware.AuthMiddlewareParams{TokenService: tokenSvc, Logger: logger}),
		Config:         cfg,
	})

	e := echo.New()
	r.RegisterRoutes(e)
	r.RegisterTestRoutes(e)

	return e
}

func TestRouter_RegistersAPI(t *testing.T) {
	e := newTestRouter(t, mockService.NewMockTokenService(t), &config.Config{})

	registered := make(map[string]bool)
	for _, route := range e.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	for _, want := range []string{
		"GET /health",
		"GET /api/v1/shops/nearby",
		"GET /api/v1/shops/declared",
		"GET /api/v1/shops/:id",
		"GET /api/v1/shops/:id/products",
		"GET /api/v1/shops/:id/qr",
		"POST /api/v1/shops/:id/declare",
		"POST /api/v1/reports",
		"GET /api/v1/reports/mine",
		"PUT /api/v1/reports/:id",
		"DELETE /api/v1/reports/:id",
		"GET /api/v1/reports/:id/can-modify",
		"GET /api/v1/prices/products/:productId",
		"GET /api/v1/prices/range",
		"GET /api/v1/prices/cheapest",
		"POST /api/v1/admin/shops/:id/verify",
		"POST /api/v1/admin/shops/:id/reject",
		"POST /api/v1/admin/shops/:id/suspend",
		"PUT /api/v1/admin/shops/:id/active",
		"POST /api/v1/admin/prices/refresh",
	} {
		assert.True(t, registered[want], "missing route %s", want)
	}
	assert.False(t, registered["GET /test/verify"], "test routes are disabled by default")
}

func TestRouter_Guards(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)
	tokenSvc.EXPECT().ValidateToken("user-token").
		Return(&service.Claims{UserID: uuid.New(), Roles: []string{"user"}}, nil).Maybe()

	cfg := &config.Config{TestRoutes: &config.TestRoutesConfig{Enabled: true}}
	e := newTestRouter(t, tokenSvc, cfg)

	tests := []struct {
		name       string
		method     string
		target     string
		token      string
		wantStatus int
	}{
		{name: "health is public", method: http.MethodGet, target: "/health", wantStatus: http.StatusOK},
		{name: "verify route is public", method: http.MethodGet, target: "/test/verify?userLat=25.0330&userLon=121.5654&shopLat=25.0331&shopLon=121.5654", wantStatus: http.StatusOK},
		{name: "api needs a token", method: http.MethodGet, target: "/api/v1/reports/mine", wantStatus: http.StatusUnauthorized},
		{name: "admin needs the role", method: http.MethodPost, target: "/api/v1/admin/shops/" + uuid.NewString() + "/verify", token: "user-token", wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.target, nil)
			if tt.token != "" {
				req.Header.Set(echo.HeaderAuthorization, "Bearer "+tt.token)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
