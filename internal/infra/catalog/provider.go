// Package catalog adapts the external product service to service.ProductCatalog.
package catalog

import (
	"log/slog"
	"strings"

	"pricemap/config"
	"pricemap/internal/domain/constants"
	"pricemap/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params holds dependencies for the catalog client, injected by Fx
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewProductCatalog selects the catalog implementation from configuration.
func NewProductCatalog(params Params) (service.ProductCatalog, error) {
	cfg := params.Config.Catalog
	if cfg == nil {
		return nil, errors.New("catalog configuration is required")
	}

	switch strings.ToLower(cfg.Provider) {
	case constants.CatalogProviderHTTP:
		if cfg.BaseURL == "" {
			return nil, errors.New("catalog baseUrl is required for http provider")
		}
		params.Logger.Info("Using HTTP product catalog",
			slog.String("base_url", cfg.BaseURL),
			slog.Duration("timeout", params.Config.CatalogTimeout()),
		)

		return NewHTTPCatalog(cfg.BaseURL, params.Config.CatalogTimeout(), params.Logger), nil

	case constants.CatalogProviderStatic:
		params.Logger.Info("Using static product catalog", slog.Int("products", len(cfg.Products)))

		return NewStaticCatalog(cfg.Products), nil

	default:
		return nil, errors.Errorf("unknown catalog provider: %s", cfg.Provider)
	}
}
