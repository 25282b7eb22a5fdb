package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/antonsh/stockscan/internal/logger"
	"github.com/antonsh/stockscan/internal/store"
	"github.com/antonsh/stockscan/models"
)

const (
	// defaultListLimit is applied when the caller omits the limit parameter.
	defaultListLimit = 50

	// maxListLimit is the hard cap on page size. Larger requests are clamped
	// silently rather than rejected.
	maxListLimit = 200
)

// inventoryService is the concrete implementation of InventoryService.
type inventoryService struct {
	inventoryRepository store.InventoryRepository
	logger              *logger.Logger
}

// NewInventoryService constructs an InventoryService backed by the given
// repository.
func NewInventoryService(inventoryRepository store.InventoryRepository, logger *logger.Logger) InventoryService {
	return &inventoryService{
		inventoryRepository: inventoryRepository,
		logger:              logger,
	}
}

// List returns the company's inventory rows ordered by id descending.
//
// companyID is mandatory. limit defaults to 50 and is clamped to 200;
// a negative offset is treated as 0. The optional query filters rows whose
// name or barcode contains it as a case-insensitive substring.
func (s *inventoryService) List(ctx context.Context, companyID *int64, query string, limit, offset int64) ([]models.InventoryItem, error) {
	log := logger.FromContext(ctx)

	if companyID == nil {
		return nil, fmt.Errorf("%w: company_id required", ErrInvalidDataProvided)
	}

	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	if offset < 0 {
		offset = 0
	}

	items, err := s.inventoryRepository.List(ctx, models.InventoryFilter{
		CompanyID: *companyID,
		Query:     strings.TrimSpace(query),
		Limit:     uint64(limit),
		Offset:    uint64(offset),
	})
	if err != nil {
		log.Err(err).Int64("company_id", *companyID).Msg("inventory list failed")
		return nil, fmt.Errorf("inventory list failed: %w", err)
	}

	return items, nil
}

// Get retrieves the single row identified by (companyID, barcode).
// Propagates store.ErrItemNotFound when no row matches.
func (s *inventoryService) Get(ctx context.Context, companyID *int64, barcode string) (models.InventoryItem, error) {
	log := logger.FromContext(ctx)

	if companyID == nil {
		return models.InventoryItem{}, fmt.Errorf("%w: company_id required", ErrInvalidDataProvided)
	}
	barcode = strings.TrimSpace(barcode)
	if barcode == "" {
		return models.InventoryItem{}, fmt.Errorf("%w: barcode required", ErrInvalidDataProvided)
	}

	item, err := s.inventoryRepository.Get(ctx, *companyID, barcode)
	if err != nil {
		log.Debug().Err(err).Int64("company_id", *companyID).Str("barcode", barcode).Msg("inventory get miss or failure")
		return models.InventoryItem{}, err
	}

	return item, nil
}

// Upsert inserts or fully overwrites the row keyed by (company_id, barcode).
//
// company_id, barcode, and name are mandatory; the error names the first
// missing field. price and qty default to 0 when absent and must not be
// negative. The operation is idempotent under repeated identical input.
func (s *inventoryService) Upsert(ctx context.Context, req models.UpsertRequest) error {
	log := logger.FromContext(ctx)

	if req.CompanyID == nil {
		return fmt.Errorf("%w: company_id required", ErrInvalidDataProvided)
	}
	barcode := strings.TrimSpace(req.Barcode)
	if barcode == "" {
		return fmt.Errorf("%w: barcode required", ErrInvalidDataProvided)
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return fmt.Errorf("%w: name required", ErrInvalidDataProvided)
	}

	var price float64
	if req.Price != nil {
		price = *req.Price
	}
	var qty int64
	if req.Qty != nil {
		qty = *req.Qty
	}
	if price < 0 || qty < 0 {
		return fmt.Errorf("%w: price and qty must be non-negative", ErrInvalidDataProvided)
	}

	err := s.inventoryRepository.Upsert(ctx, models.InventoryItem{
		CompanyID: *req.CompanyID,
		Barcode:   barcode,
		Name:      name,
		Price:     price,
		Qty:       qty,
	})
	if err != nil {
		log.Err(err).Int64("company_id", *req.CompanyID).Str("barcode", barcode).Msg("inventory upsert failed")
		return fmt.Errorf("inventory upsert failed: %w", err)
	}

	return nil
}

// Adjust applies a signed quantity delta to an existing row and returns the
// updated row. The stored quantity is clamped at zero. Adjustments never
// create rows; a miss propagates store.ErrItemNotFound.
func (s *inventoryService) Adjust(ctx context.Context, req models.AdjustRequest) (models.InventoryItem, error) {
	log := logger.FromContext(ctx)

	if req.CompanyID == nil {
		return models.InventoryItem{}, fmt.Errorf("%w: company_id required", ErrInvalidDataProvided)
	}
	barcode := strings.TrimSpace(req.Barcode)
	if barcode == "" {
		return models.InventoryItem{}, fmt.Errorf("%w: barcode required", ErrInvalidDataProvided)
	}
	if req.Delta == nil {
		return models.InventoryItem{}, fmt.Errorf("%w: delta required", ErrInvalidDataProvided)
	}

	item, err := s.inventoryRepository.AdjustQty(ctx, *req.CompanyID, barcode, *req.Delta)
	if err != nil {
		log.Debug().Err(err).Int64("company_id", *req.CompanyID).Str("barcode", barcode).Int64("delta", *req.Delta).Msg("inventory adjust miss or failure")
		return models.InventoryItem{}, err
	}

	return item, nil
}
