package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/antonsh/stockscan/internal/config"
	"github.com/antonsh/stockscan/internal/logger"
	"github.com/go-resty/resty/v2"
)

// httpCatalog is the resty-backed [CatalogProvider] used when an external
// catalog base URL is configured. It expects the remote service to answer
// GET {base}/items/{barcode} with a JSON CatalogItem, or 404 when unknown.
type httpCatalog struct {
	client *resty.Client
	logger *logger.Logger
}

// NewHTTPCatalog constructs an HTTP implementation of [CatalogProvider]
// from the adapter configuration.
func NewHTTPCatalog(cfg config.Adapter, log *logger.Logger) CatalogProvider {
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	client := resty.New().
		SetBaseURL(strings.TrimRight(cfg.CatalogURL, "/")).
		SetTimeout(timeout)

	log.Info().Str("catalog_url", cfg.CatalogURL).Msg("external catalog provider configured")

	return &httpCatalog{client: client, logger: log}
}

func (h *httpCatalog) Lookup(ctx context.Context, barcode string) (CatalogItem, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/items/" + barcode)
	if err != nil {
		return CatalogItem{}, fmt.Errorf("%w: %w", ErrCatalogUnavailable, err)
	}

	switch resp.StatusCode() {
	case http.StatusOK:
		var item CatalogItem
		if err := json.Unmarshal(resp.Body(), &item); err != nil {
			return CatalogItem{}, fmt.Errorf("%w: decoding response: %w", ErrCatalogUnavailable, err)
		}
		if item.Barcode == "" {
			item.Barcode = barcode
		}
		return item, nil
	case http.StatusNotFound:
		return CatalogItem{}, ErrNotInCatalog
	default:
		return CatalogItem{}, fmt.Errorf("%w: unexpected status %d", ErrCatalogUnavailable, resp.StatusCode())
	}
}
