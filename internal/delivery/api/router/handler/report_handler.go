package handler

import (
	"log/slog"
	"net/http"

	"pricemap/internal/delivery/api/middleware"
	"pricemap/internal/delivery/api/response"
	"pricemap/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// ReportHandlerParams holds dependencies for ReportHandler, injected by Fx.
type ReportHandlerParams struct {
	fx.In

	ReportUC usecase.ReportUsecase
	Logger   *slog.Logger
}

// ReportHandler holds dependencies for price report handlers
type ReportHandler struct {
	reportUC usecase.ReportUsecase
	logger   *slog.Logger
}

// NewReportHandler is the constructor for ReportHandler
func NewReportHandler(params ReportHandlerParams) *ReportHandler {
	return &ReportHandler{
		reportUC: params.ReportUC,
		logger:   params.Logger,
	}
}

// SubmitReportRequest represents the request body for reporting a price.
// Price accepts a JSON number or string.
type SubmitReportRequest struct {
	ProductID   int64            `json:"product_id" validate:"required,gt=0"`
	Price       *decimal.Decimal `json:"price" validate:"required"`
	Latitude    *float64         `json:"latitude" validate:"required"`
	Longitude   *float64         `json:"longitude" validate:"required"`
	ShopID      *uuid.UUID       `json:"shop_id"`
	ShopName    string           `json:"shop_name" validate:"max=255"`
	GPSAccuracy *float64         `json:"gps_accuracy" validate:"omitempty,gte=0"`
	// SearchRadius is the neighbour check radius in meters for shop creation.
	SearchRadius float64 `json:"search_radius" validate:"gte=0"`
}

// ModifyReportRequest represents the request body for correcting a price
type ModifyReportRequest struct {
	Price *decimal.Decimal `json:"price" validate:"required"`
}

// SubmitReport handles POST /reports
func (h *ReportHandler) SubmitReport(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req SubmitReportRequest
	if err := bindBody(c, &req, "Invalid price report input"); err != nil {
		return err
	}

	result, err := h.reportUC.SubmitReport(c.Request().Context(), &usecase.SubmitReportInput{
		ProductID:   req.ProductID,
		Price:       *req.Price,
		Latitude:    *req.Latitude,
		Longitude:   *req.Longitude,
		UserID:      userID,
		ShopID:      req.ShopID,
		ShopName:    req.ShopName,
		GPSAccuracy: req.GPSAccuracy,

		SearchRadiusMeters: req.SearchRadius,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	status := http.StatusCreated
	if result.Duplicate {
		status = http.StatusOK
	}

	return response.Success(c, status, result)
}

// ModifyReport handles PUT /reports/:id
func (h *ReportHandler) ModifyReport(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	reportID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req ModifyReportRequest
	if err := bindBody(c, &req, "Invalid price input"); err != nil {
		return err
	}

	summary, err := h.reportUC.ModifyReport(c.Request().Context(), reportID, *req.Price, userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, summary)
}

// UndoReport handles DELETE /reports/:id
func (h *ReportHandler) UndoReport(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	reportID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	if _, err := h.reportUC.UndoReport(c.Request().Context(), reportID, userID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"report_id": reportID,
		"message":   "Price report removed",
	})
}

// ListUserReports handles GET /reports/mine?limit
func (h *ReportHandler) ListUserReports(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var limit int
	if err := echo.QueryParamsBinder(c).Int("limit", &limit).BindError(); err != nil {
		return queryError(err)
	}

	reports, err := h.reportUC.ListUserReports(c.Request().Context(), userID, limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"reports": reports,
		"count":   len(reports),
	})
}

// CanModify handles GET /reports/:id/can-modify
func (h *ReportHandler) CanModify(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	reportID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	allowed, err := h.reportUC.CanModify(c.Request().Context(), reportID, userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"report_id":  reportID,
		"can_modify": allowed,
	})
}
