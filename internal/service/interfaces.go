package service

import (
	"context"

	"github.com/antonsh/stockscan/models"
)

// AuthService handles account registration, credential verification, and the
// JWT token lifecycle.
type AuthService interface {
	RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// InventoryService implements the company-scoped inventory catalog:
// list/search, exact lookup, upsert, and quantity adjustment.
type InventoryService interface {
	List(ctx context.Context, companyID *int64, query string, limit, offset int64) ([]models.InventoryItem, error)
	Get(ctx context.Context, companyID *int64, barcode string) (models.InventoryItem, error)
	Upsert(ctx context.Context, req models.UpsertRequest) error
	Adjust(ctx context.Context, req models.AdjustRequest) (models.InventoryItem, error)
}

// ScanService resolves a scanned barcode through the fallback chain:
// local inventory first, then the external catalog, then a structured
// not-in-catalog result ([*NotInCatalogError]).
type ScanService interface {
	Resolve(ctx context.Context, req models.ScanRequest) (models.ScanResponse, error)
}
