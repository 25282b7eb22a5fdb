package store

import (
	"context"

	"github.com/antonsh/stockscan/models"
)

// UserRepository provides persistence for user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
}

// InventoryRepository provides persistence for company-scoped inventory rows.
//
// FindAnyByBarcode is the single company-unscoped lookup; it backs the scan
// endpoint, which historically searches across all companies. It returns the
// row as a column→value map so the scan normalizer can resolve historical
// column aliases.
type InventoryRepository interface {
	List(ctx context.Context, filter models.InventoryFilter) ([]models.InventoryItem, error)
	Get(ctx context.Context, companyID int64, barcode string) (models.InventoryItem, error)
	Upsert(ctx context.Context, item models.InventoryItem) error
	AdjustQty(ctx context.Context, companyID int64, barcode string, delta int64) (models.InventoryItem, error)
	FindAnyByBarcode(ctx context.Context, barcode string) (map[string]any, error)
}
