package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/antonsh/stockscan/internal/logger"
	"github.com/antonsh/stockscan/models"
)

// inventoryRepository is the PostgreSQL-backed implementation of
// [InventoryRepository]. All mutations rely on single-statement atomicity:
// the upsert is an INSERT ... ON CONFLICT DO UPDATE and the quantity
// adjustment is a single UPDATE, so concurrent writers to the same
// (company_id, barcode) pair cannot produce lost updates.
type inventoryRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewInventoryRepository constructs an [InventoryRepository] backed by the
// provided database connection and logger.
func NewInventoryRepository(db *DB, logger *logger.Logger) InventoryRepository {
	logger.Debug().Msg("creating inventory repository")
	return &inventoryRepository{
		db:     db,
		logger: logger,
	}
}

// List returns the company's inventory rows, newest first, filtered and
// paginated according to filter. The SELECT is built dynamically because the
// search term is optional; see [buildListInventoryQuery].
func (r *inventoryRepository) List(ctx context.Context, filter models.InventoryFilter) ([]models.InventoryItem, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListInventoryQuery(filter)
	if err != nil {
		log.Err(err).Str("func", "*inventoryRepository.List").Msg("error building list query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*inventoryRepository.List").Msg("error executing list query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]models.InventoryItem, 0)
	for rows.Next() {
		var item models.InventoryItem
		if err := rows.Scan(&item.ID, &item.CompanyID, &item.Barcode, &item.Name, &item.Price, &item.Qty); err != nil {
			log.Err(err).Str("func", "*inventoryRepository.List").Msg("error scanning inventory row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return items, nil
}

// Get retrieves the single row identified by (companyID, barcode).
// Returns [ErrItemNotFound] when no such row exists.
func (r *inventoryRepository) Get(ctx context.Context, companyID int64, barcode string) (models.InventoryItem, error) {
	log := logger.FromContext(ctx)

	var item models.InventoryItem
	row := r.db.QueryRowContext(ctx, getInventoryItem, companyID, barcode)

	if err := row.Scan(&item.ID, &item.CompanyID, &item.Barcode, &item.Name, &item.Price, &item.Qty); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.InventoryItem{}, ErrItemNotFound
		}
		log.Err(err).Str("func", "*inventoryRepository.Get").Msg("error scanning inventory row")
		return models.InventoryItem{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return item, nil
}

// Upsert inserts the row or, when a row with the same (company_id, barcode)
// already exists, overwrites its name/price/qty with the supplied values.
// The operation is idempotent under repeated identical input.
func (r *inventoryRepository) Upsert(ctx context.Context, item models.InventoryItem) error {
	log := logger.FromContext(ctx)

	_, err := r.db.ExecContext(ctx, upsertInventoryItem, item.CompanyID, item.Barcode, item.Name, item.Price, item.Qty)
	if err != nil {
		log.Err(err).Str("func", "*inventoryRepository.Upsert").Msg("error executing upsert")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// AdjustQty applies a signed quantity delta to an existing row and returns
// the row as updated. The quantity never goes below zero. Returns
// [ErrItemNotFound] when the row does not exist; adjustments never create
// rows.
func (r *inventoryRepository) AdjustQty(ctx context.Context, companyID int64, barcode string, delta int64) (models.InventoryItem, error) {
	log := logger.FromContext(ctx)

	var item models.InventoryItem
	row := r.db.QueryRowContext(ctx, adjustInventoryQty, companyID, barcode, delta)

	if err := row.Scan(&item.ID, &item.CompanyID, &item.Barcode, &item.Name, &item.Price, &item.Qty); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.InventoryItem{}, ErrItemNotFound
		}
		log.Err(err).Str("func", "*inventoryRepository.AdjustQty").Msg("error scanning adjusted row")
		return models.InventoryItem{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return item, nil
}

// FindAnyByBarcode looks up a row by barcode alone, across all companies.
// The result is returned as a column→value map built from the row's actual
// column set, so the caller can resolve historical column-name aliases
// without this layer committing to one schema generation.
//
// Returns [ErrItemNotFound] when no row matches.
func (r *inventoryRepository) FindAnyByBarcode(ctx context.Context, barcode string) (map[string]any, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, findAnyByBarcode, barcode)
	if err != nil {
		log.Err(err).Str("func", "*inventoryRepository.FindAnyByBarcode").Msg("error executing barcode lookup")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		return nil, ErrItemNotFound
	}

	values := make([]any, len(columns))
	pointers := make([]any, len(columns))
	for i := range values {
		pointers[i] = &values[i]
	}
	if err := rows.Scan(pointers...); err != nil {
		log.Err(err).Str("func", "*inventoryRepository.FindAnyByBarcode").Msg("error scanning barcode row")
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	record := make(map[string]any, len(columns))
	for i, column := range columns {
		record[column] = values[i]
	}

	return record, nil
}
