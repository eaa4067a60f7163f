package handler

import (
	"log/slog"
	"net/http"

	"pricemap/internal/delivery/api/middleware"
	"pricemap/internal/delivery/api/response"
	deliverycontext "pricemap/internal/delivery/context"
	"pricemap/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ShopHandlerParams holds dependencies for ShopHandler, injected by Fx.
type ShopHandlerParams struct {
	fx.In

	ShopUC usecase.ShopUsecase
	Logger *slog.Logger
}

// ShopHandler holds dependencies for shop discovery handlers
type ShopHandler struct {
	shopUC usecase.ShopUsecase
	logger *slog.Logger
}

// NewShopHandler is the constructor for ShopHandler
func NewShopHandler(params ShopHandlerParams) *ShopHandler {
	return &ShopHandler{
		shopUC: params.ShopUC,
		logger: params.Logger,
	}
}

// DeclareShopRequest represents the request body for declaring presence at a shop
type DeclareShopRequest struct {
	Latitude    *float64 `json:"latitude" validate:"required"`
	Longitude   *float64 `json:"longitude" validate:"required"`
	GPSAccuracy *float64 `json:"gps_accuracy" validate:"omitempty,gte=0"`
}

// FindNearbyShops handles GET /shops/nearby?productId&lat&lon&radius
func (h *ShopHandler) FindNearbyShops(c echo.Context) error {
	input := &usecase.NearbyShopsInput{}
	err := echo.QueryParamsBinder(c).
		Int64("productId", &input.ProductID).
		MustFloat64("lat", &input.Latitude).
		MustFloat64("lon", &input.Longitude).
		Float64("radius", &input.RadiusMeters).
		BindError()
	if err != nil {
		return queryError(err)
	}

	result, err := h.shopUC.FindNearbyShops(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

// GetShop handles retrieving one shop
func (h *ShopHandler) GetShop(c echo.Context) error {
	shopID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	shop, err := h.shopUC.GetShop(c.Request().Context(), shopID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, shop)
}

// ListShopProducts handles retrieving the displayed prices of a shop
func (h *ShopHandler) ListShopProducts(c echo.Context) error {
	shopID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	products, err := h.shopUC.ListShopProducts(c.Request().Context(), shopID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"shop_id":  shopID,
		"products": products,
		"count":    len(products),
	})
}

// GenerateShopQR renders the share code of a shop as PNG
func (h *ShopHandler) GenerateShopQR(c echo.Context) error {
	shopID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	png, err := h.shopUC.GenerateShopQR(c.Request().Context(), shopID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// DeclareShop handles a user declaring presence at a shop
func (h *ShopHandler) DeclareShop(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	shopID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req DeclareShopRequest
	if err := bindBody(c, &req, "Invalid declaration input"); err != nil {
		return err
	}

	result, err := h.shopUC.DeclareShop(c.Request().Context(), &usecase.DeclareShopInput{
		ShopID:      shopID,
		UserID:      userID,
		Latitude:    *req.Latitude,
		Longitude:   *req.Longitude,
		GPSAccuracy: req.GPSAccuracy,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).Info("Shop declared",
		slog.String("shop_id", shopID.String()),
		slog.Float64("distance_meters", result.DistanceMeters),
	)

	return response.Success(c, http.StatusOK, result)
}

// ListDeclaredShops handles retrieving the shops the caller has declared
func (h *ShopHandler) ListDeclaredShops(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	shops, err := h.shopUC.ListDeclaredShops(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"shops": shops,
		"count": len(shops),
	})
}
