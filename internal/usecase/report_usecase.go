package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SubmitReportInput represents a price observation sent by a user.
type SubmitReportInput struct {
	ProductID   int64
	Price       decimal.Decimal
	Latitude    float64
	Longitude   float64
	UserID      uuid.UUID
	ShopID      *uuid.UUID // target an existing shop, nil creates one
	ShopName    string
	GPSAccuracy *float64
	// SearchRadiusMeters is the neighbour check radius for shop creation;
	// zero means the configured creation radius.
	SearchRadiusMeters float64
}

// SubmitReportResult is the state after a report was accepted.
type SubmitReportResult struct {
	ReportID       uuid.UUID       `json:"report_id,omitempty"`
	ShopID         uuid.UUID       `json:"shop_id"`
	ShopName       string          `json:"shop_name"`
	Latitude       float64         `json:"latitude"`
	Longitude      float64         `json:"longitude"`
	ProductID      int64           `json:"product_id"`
	Price          decimal.Decimal `json:"price"`
	IsNewShop      bool            `json:"is_new_shop"`
	IsNewProduct   bool            `json:"is_new_product"`
	Duplicate      bool            `json:"duplicate"`
	DistanceMeters float64         `json:"distance_meters"`
	Message        string          `json:"message"`
}

// ReportSummary describes one report together with the shop it targets.
type ReportSummary struct {
	ReportID   uuid.UUID       `json:"report_id"`
	ShopID     uuid.UUID       `json:"shop_id"`
	ShopName   string          `json:"shop_name"`
	Latitude   float64         `json:"latitude"`
	Longitude  float64         `json:"longitude"`
	ProductID  int64           `json:"product_id"`
	Price      decimal.Decimal `json:"price"`
	ShopPrice  decimal.Decimal `json:"shop_price"`
	ReportedAt time.Time       `json:"reported_at"`
	Message    string          `json:"message"`
	CanModify  bool            `json:"can_modify"`
}

// ReportUsecase defines the interface for the price report lifecycle
type ReportUsecase interface {
	// SubmitReport records a price, creating the shop when none is targeted.
	SubmitReport(ctx context.Context, input *SubmitReportInput) (*SubmitReportResult, error)

	// ModifyReport overwrites the price of one of the caller's recent reports.
	ModifyReport(ctx context.Context, reportID uuid.UUID, newPrice decimal.Decimal, userID uuid.UUID) (*ReportSummary, error)

	// UndoReport deletes one of the caller's recent reports.
	UndoReport(ctx context.Context, reportID, userID uuid.UUID) (bool, error)

	// ListUserReports returns the caller's recent reports, newest first.
	ListUserReports(ctx context.Context, userID uuid.UUID, limit int) ([]*ReportSummary, error)

	// CanModify reports whether ModifyReport and UndoReport would be allowed.
	CanModify(ctx context.Context, reportID, userID uuid.UUID) (bool, error)
}
