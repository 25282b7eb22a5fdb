package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/antonsh/stockscan/internal/adapter"
	"github.com/antonsh/stockscan/internal/logger"
	"github.com/antonsh/stockscan/internal/store"
	"github.com/antonsh/stockscan/models"
)

// Workflow modes accepted by the scan endpoint.
const (
	ModeStock   = "stock"
	ModeProduce = "produce"
)

// Scan result sources and the follow-up actions offered for each.
const (
	sourceLocal    = "local"
	sourceExternal = "external_stub"
)

var (
	localActions    = []string{"add_qty", "edit", "view"}
	externalActions = []string{"add_new", "set_price", "add_qty"}
)

// scanService resolves barcodes through the fallback chain: local inventory
// first (by barcode alone, across companies), then the external catalog
// provider, then the structured not-in-catalog result. The ordering is a
// contract: a barcode present both locally and in the catalog resolves local.
type scanService struct {
	inventoryRepository store.InventoryRepository
	catalog             adapter.CatalogProvider
	logger              *logger.Logger
}

// NewScanService constructs a ScanService over the inventory repository and
// the external catalog provider.
func NewScanService(inventoryRepository store.InventoryRepository, catalog adapter.CatalogProvider, logger *logger.Logger) ScanService {
	return &scanService{
		inventoryRepository: inventoryRepository,
		catalog:             catalog,
		logger:              logger,
	}
}

// Resolve classifies a scanned barcode.
//
// Returns:
//   - ErrInvalidDataProvided when the barcode is empty after trimming.
//   - ErrInvalidMode when mode is neither "stock" nor "produce".
//   - A *NotInCatalogError when neither source knows the barcode; it carries
//     the normalized mode so the caller can surface the alternate-mode hint.
func (s *scanService) Resolve(ctx context.Context, req models.ScanRequest) (models.ScanResponse, error) {
	log := logger.FromContext(ctx)

	barcode := strings.TrimSpace(req.Barcode)
	if barcode == "" {
		return models.ScanResponse{}, fmt.Errorf("%w: barcode required", ErrInvalidDataProvided)
	}

	mode := req.Mode
	if mode == "" {
		mode = ModeStock
	}
	if mode != ModeStock && mode != ModeProduce {
		return models.ScanResponse{}, fmt.Errorf("%w: got %q", ErrInvalidMode, req.Mode)
	}

	record, err := s.inventoryRepository.FindAnyByBarcode(ctx, barcode)
	switch {
	case err == nil:
		log.Debug().Str("barcode", barcode).Msg("scan resolved locally")
		return models.ScanResponse{
			Source:  sourceLocal,
			Item:    normalizeScanRow(record, barcode),
			Actions: localActions,
		}, nil
	case !errors.Is(err, store.ErrItemNotFound):
		log.Err(err).Str("barcode", barcode).Msg("local scan lookup failed")
		return models.ScanResponse{}, fmt.Errorf("local scan lookup failed: %w", err)
	}

	catalogItem, err := s.catalog.Lookup(ctx, barcode)
	switch {
	case err == nil:
		log.Debug().Str("barcode", barcode).Msg("scan resolved by external catalog")
		return models.ScanResponse{
			Source: sourceExternal,
			Item: models.ScanItem{
				Barcode: catalogItem.Barcode,
				Name:    catalogItem.Name,
				Price:   catalogItem.Price,
			},
			Actions: externalActions,
		}, nil
	case !errors.Is(err, adapter.ErrNotInCatalog):
		log.Err(err).Str("barcode", barcode).Msg("external catalog lookup failed")
		return models.ScanResponse{}, fmt.Errorf("external catalog lookup failed: %w", err)
	}

	log.Debug().Str("barcode", barcode).Str("mode", mode).Msg("barcode not in catalog")
	return models.ScanResponse{}, &NotInCatalogError{Barcode: barcode, Mode: mode}
}
