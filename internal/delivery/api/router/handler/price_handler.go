package handler

import (
	"net/http"

	"pricemap/internal/delivery/api/response"
	"pricemap/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// PriceHandlerParams holds dependencies for PriceHandler, injected by Fx.
type PriceHandlerParams struct {
	fx.In

	PriceUC usecase.PriceUsecase
}

// PriceHandler serves product-wide price queries
type PriceHandler struct {
	priceUC usecase.PriceUsecase
}

// NewPriceHandler is the constructor for PriceHandler
func NewPriceHandler(params PriceHandlerParams) *PriceHandler {
	return &PriceHandler{priceUC: params.PriceUC}
}

// GetProductAverage handles GET /prices/products/:productId
func (h *PriceHandler) GetProductAverage(c echo.Context) error {
	var productID int64
	if err := echo.PathParamsBinder(c).MustInt64("productId", &productID).BindError(); err != nil {
		return queryError(err)
	}

	average, err := h.priceUC.GetProductAverage(c.Request().Context(), productID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, average)
}

// FindAveragesInRange handles GET /prices/range?min&max
func (h *PriceHandler) FindAveragesInRange(c echo.Context) error {
	minPrice, err := decimalQuery(c, "min", decimal.Zero)
	if err != nil {
		return err
	}

	maxPrice, err := decimalQuery(c, "max", decimal.Zero)
	if err != nil {
		return err
	}
	if c.QueryParam("max") == "" {
		return invalidRequest("INVALID_QUERY", "max is required", map[string]any{"max": "required"})
	}

	averages, err := h.priceUC.FindAveragesInRange(c.Request().Context(), minPrice, maxPrice)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"averages": averages,
		"count":    len(averages),
	})
}

// FindCheapest handles GET /prices/cheapest?limit
func (h *PriceHandler) FindCheapest(c echo.Context) error {
	var limit int
	if err := echo.QueryParamsBinder(c).Int("limit", &limit).BindError(); err != nil {
		return queryError(err)
	}

	averages, err := h.priceUC.FindCheapest(c.Request().Context(), limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"averages": averages,
		"count":    len(averages),
	})
}
