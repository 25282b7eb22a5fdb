package service

import (
	"context"

	"github.com/antonsh/stockscan/internal/adapter"
	"github.com/antonsh/stockscan/models"
)

// mockUserRepository is a hand-rolled store.UserRepository test double with
// overridable function fields.
type mockUserRepository struct {
	createUserFunc         func(ctx context.Context, user models.User) (models.User, error)
	findUserByUsernameFunc func(ctx context.Context, username string) (models.User, error)
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	return m.createUserFunc(ctx, user)
}

func (m *mockUserRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	return m.findUserByUsernameFunc(ctx, username)
}

// mockInventoryRepository is a hand-rolled store.InventoryRepository test
// double with overridable function fields.
type mockInventoryRepository struct {
	listFunc             func(ctx context.Context, filter models.InventoryFilter) ([]models.InventoryItem, error)
	getFunc              func(ctx context.Context, companyID int64, barcode string) (models.InventoryItem, error)
	upsertFunc           func(ctx context.Context, item models.InventoryItem) error
	adjustQtyFunc        func(ctx context.Context, companyID int64, barcode string, delta int64) (models.InventoryItem, error)
	findAnyByBarcodeFunc func(ctx context.Context, barcode string) (map[string]any, error)
}

func (m *mockInventoryRepository) List(ctx context.Context, filter models.InventoryFilter) ([]models.InventoryItem, error) {
	return m.listFunc(ctx, filter)
}

func (m *mockInventoryRepository) Get(ctx context.Context, companyID int64, barcode string) (models.InventoryItem, error) {
	return m.getFunc(ctx, companyID, barcode)
}

func (m *mockInventoryRepository) Upsert(ctx context.Context, item models.InventoryItem) error {
	return m.upsertFunc(ctx, item)
}

func (m *mockInventoryRepository) AdjustQty(ctx context.Context, companyID int64, barcode string, delta int64) (models.InventoryItem, error) {
	return m.adjustQtyFunc(ctx, companyID, barcode, delta)
}

func (m *mockInventoryRepository) FindAnyByBarcode(ctx context.Context, barcode string) (map[string]any, error) {
	return m.findAnyByBarcodeFunc(ctx, barcode)
}

// mockCatalog is a hand-rolled adapter.CatalogProvider test double.
type mockCatalog struct {
	lookupFunc func(ctx context.Context, barcode string) (adapter.CatalogItem, error)
}

func (m *mockCatalog) Lookup(ctx context.Context, barcode string) (adapter.CatalogItem, error) {
	return m.lookupFunc(ctx, barcode)
}
