package catalog

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	deliverycontext "pricemap/internal/delivery/context"
	"pricemap/internal/domain/entity"
	domainerrors "pricemap/internal/domain/errors"
	"pricemap/internal/domain/service"

	"github.com/spf13/cast"
)

const maxCatalogBodyBytes = 1 << 20

type httpCatalog struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewHTTPCatalog queries GET {baseURL}/{id}.
func NewHTTPCatalog(baseURL string, timeout time.Duration, logger *slog.Logger) service.ProductCatalog {
	return &httpCatalog{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// GetProduct maps 404 to ErrProductNotFound and every other failure to
// ErrCatalogUnavailable.
func (c *httpCatalog) GetProduct(ctx context.Context, productID int64) (*entity.Product, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, c.logger)
	url := c.baseURL + "/" + strconv.FormatInt(productID, 10)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, domainerrors.ErrCatalogUnavailable.WrapMessage(err.Error())
	}
	req.Header.Set("Accept", "application/json")
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		req.Header.Set("X-Request-Id", requestID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Warn("Catalog request failed", slog.Int64("productID", productID), slog.Any("error", err))

		return nil, domainerrors.ErrCatalogUnavailable.WrapMessage("catalog request failed")
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, domainerrors.ErrProductNotFound
	case resp.StatusCode != http.StatusOK:
		logger.Warn("Catalog returned unexpected status",
			slog.Int64("productID", productID),
			slog.Int("status", resp.StatusCode),
		)

		return nil, domainerrors.ErrCatalogUnavailable
	}

	var payload map[string]any
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxCatalogBodyBytes)).Decode(&payload); err != nil {
		logger.Warn("Catalog returned malformed body", slog.Int64("productID", productID), slog.Any("error", err))

		return nil, domainerrors.ErrCatalogUnavailable.WrapMessage("malformed catalog response")
	}

	return decodeProduct(productID, payload)
}

// decodeProduct reads a loosely typed catalog document. A missing activity
// flag means active; a missing id falls back to the requested one.
func decodeProduct(productID int64, payload map[string]any) (*entity.Product, error) {
	product := &entity.Product{ID: productID, IsActive: true}

	if raw, ok := payload["id"]; ok && raw != nil {
		id, err := cast.ToInt64E(raw)
		if err != nil {
			return nil, domainerrors.ErrCatalogUnavailable.WrapMessage("catalog id is not numeric")
		}
		if id != productID {
			return nil, domainerrors.ErrProductNotFound
		}
	}
	product.Name = cast.ToString(payload["name"])

	for _, key := range []string{"isActive", "is_active", "active"} {
		raw, ok := payload[key]
		if !ok || raw == nil {
			continue
		}
		active, err := cast.ToBoolE(raw)
		if err != nil {
			return nil, domainerrors.ErrCatalogUnavailable.WrapMessage("catalog activity flag is not boolean")
		}
		product.IsActive = active

		break
	}

	return product, nil
}
