package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"pricemap/internal/delivery/api/middleware"
	"pricemap/internal/delivery/api/response"
	deliverycontext "pricemap/internal/delivery/context"
	"pricemap/internal/domain/entity"
	"pricemap/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	ShopUC  usecase.ShopUsecase
	PriceUC usecase.PriceUsecase
	Logger  *slog.Logger
}

// AdminHandler holds dependencies for moderation handlers
type AdminHandler struct {
	shopUC  usecase.ShopUsecase
	priceUC usecase.PriceUsecase
	logger  *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		shopUC:  params.ShopUC,
		priceUC: params.PriceUC,
		logger:  params.Logger,
	}
}

// SetShopActiveRequest represents the request body for toggling a shop
type SetShopActiveRequest struct {
	Active *bool `json:"active" validate:"required"`
}

// VerifyShop handles POST /admin/shops/:id/verify
func (h *AdminHandler) VerifyShop(c echo.Context) error {
	return h.moderate(c, h.shopUC.VerifyShop)
}

// RejectShop handles POST /admin/shops/:id/reject
func (h *AdminHandler) RejectShop(c echo.Context) error {
	return h.moderate(c, h.shopUC.RejectShop)
}

// SuspendShop handles POST /admin/shops/:id/suspend
func (h *AdminHandler) SuspendShop(c echo.Context) error {
	return h.moderate(c, h.shopUC.SuspendShop)
}

// SetShopActive handles PUT /admin/shops/:id/active
func (h *AdminHandler) SetShopActive(c echo.Context) error {
	shopID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req SetShopActiveRequest
	if err := bindBody(c, &req, "Invalid shop activity input"); err != nil {
		return err
	}

	shop, err := h.shopUC.SetShopActive(c.Request().Context(), shopID, *req.Active)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, shop)
}

// RefreshPrices runs a stale price refresh on demand.
// staleAfter is optional; the configured window applies when it is absent.
func (h *AdminHandler) RefreshPrices(c echo.Context) error {
	var staleAfter time.Duration
	if err := echo.QueryParamsBinder(c).Duration("staleAfter", &staleAfter).BindError(); err != nil {
		return queryError(err)
	}

	result, err := h.priceUC.RefreshStalePrices(c.Request().Context(), staleAfter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).Info("Manual price refresh finished",
		slog.Int("scanned", result.Scanned),
		slog.Int("updated", result.Updated),
		slog.Int("failed", result.Failed),
	)

	return response.Success(c, http.StatusOK, result)
}

type moderationFunc func(ctx context.Context, shopID, adminID uuid.UUID) (*entity.Shop, error)

func (h *AdminHandler) moderate(c echo.Context, apply moderationFunc) error {
	adminID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	shopID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	shop, err := apply(c.Request().Context(), shopID, adminID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, shop)
}
