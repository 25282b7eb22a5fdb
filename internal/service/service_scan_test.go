package service

import (
	"context"
	"errors"
	"testing"

	"github.com/antonsh/stockscan/internal/adapter"
	"github.com/antonsh/stockscan/internal/logger"
	"github.com/antonsh/stockscan/internal/store"
	"github.com/antonsh/stockscan/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func notFoundRepo() *mockInventoryRepository {
	return &mockInventoryRepository{
		findAnyByBarcodeFunc: func(_ context.Context, _ string) (map[string]any, error) {
			return nil, store.ErrItemNotFound
		},
	}
}

func emptyCatalog() *mockCatalog {
	return &mockCatalog{
		lookupFunc: func(_ context.Context, _ string) (adapter.CatalogItem, error) {
			return adapter.CatalogItem{}, adapter.ErrNotInCatalog
		},
	}
}

func TestScanResolve_LocalHit(t *testing.T) {
	repo := &mockInventoryRepository{
		findAnyByBarcodeFunc: func(_ context.Context, barcode string) (map[string]any, error) {
			return map[string]any{
				"id":      int64(5),
				"barcode": barcode,
				"name":    "Cola 330ml",
				"price":   1.99,
				"qty":     int64(40),
			}, nil
		},
	}
	svc := NewScanService(repo, emptyCatalog(), logger.Nop())

	resp, err := svc.Resolve(context.Background(), models.ScanRequest{Barcode: "4600000000001"})
	require.NoError(t, err)

	assert.Equal(t, "local", resp.Source)
	assert.Equal(t, "Cola 330ml", resp.Item.Name)
	assert.Equal(t, int64(40), resp.Item.Qty)
	assert.Equal(t, []string{"add_qty", "edit", "view"}, resp.Actions)
}

func TestScanResolve_LocalWinsOverCatalog(t *testing.T) {
	catalogCalled := false
	repo := &mockInventoryRepository{
		findAnyByBarcodeFunc: func(_ context.Context, barcode string) (map[string]any, error) {
			return map[string]any{"barcode": barcode, "name": "Local Cola"}, nil
		},
	}
	catalog := &mockCatalog{
		lookupFunc: func(_ context.Context, _ string) (adapter.CatalogItem, error) {
			catalogCalled = true
			return adapter.CatalogItem{Name: "Catalog Cola"}, nil
		},
	}
	svc := NewScanService(repo, catalog, logger.Nop())

	resp, err := svc.Resolve(context.Background(), models.ScanRequest{Barcode: "4600000000001"})
	require.NoError(t, err)

	assert.Equal(t, "local", resp.Source)
	assert.Equal(t, "Local Cola", resp.Item.Name)
	assert.False(t, catalogCalled, "catalog must not be consulted on a local hit")
}

func TestScanResolve_CatalogFallback(t *testing.T) {
	price := 1.99
	catalog := &mockCatalog{
		lookupFunc: func(_ context.Context, barcode string) (adapter.CatalogItem, error) {
			return adapter.CatalogItem{Barcode: barcode, Name: "Demo Cola 330ml", Price: &price}, nil
		},
	}
	svc := NewScanService(notFoundRepo(), catalog, logger.Nop())

	resp, err := svc.Resolve(context.Background(), models.ScanRequest{Barcode: "0123456789012"})
	require.NoError(t, err)

	assert.Equal(t, "external_stub", resp.Source)
	assert.Equal(t, "Demo Cola 330ml", resp.Item.Name)
	assert.Nil(t, resp.Item.ID, "catalog results carry no local row id")
	require.NotNil(t, resp.Item.Price)
	assert.Equal(t, price, *resp.Item.Price)
	assert.Equal(t, []string{"add_new", "set_price", "add_qty"}, resp.Actions)
}

func TestScanResolve_NotInCatalog_StockMode(t *testing.T) {
	svc := NewScanService(notFoundRepo(), emptyCatalog(), logger.Nop())

	_, err := svc.Resolve(context.Background(), models.ScanRequest{Barcode: "0000000000000", Mode: ModeStock})

	var notFound *NotInCatalogError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "0000000000000", notFound.Barcode)
	assert.Equal(t, ModeStock, notFound.Mode)
	assert.Equal(t, "switch_to_produce", notFound.Suggestion())
}

func TestScanResolve_NotInCatalog_ProduceMode(t *testing.T) {
	svc := NewScanService(notFoundRepo(), emptyCatalog(), logger.Nop())

	_, err := svc.Resolve(context.Background(), models.ScanRequest{Barcode: "0000000000000", Mode: ModeProduce})

	var notFound *NotInCatalogError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "switch_to_stock", notFound.Suggestion())
}

func TestScanResolve_ModeDefaultsToStock(t *testing.T) {
	svc := NewScanService(notFoundRepo(), emptyCatalog(), logger.Nop())

	_, err := svc.Resolve(context.Background(), models.ScanRequest{Barcode: "0000000000000"})

	var notFound *NotInCatalogError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, ModeStock, notFound.Mode)
}

func TestScanResolve_InvalidMode(t *testing.T) {
	svc := NewScanService(notFoundRepo(), emptyCatalog(), logger.Nop())

	_, err := svc.Resolve(context.Background(), models.ScanRequest{Barcode: "123", Mode: "audit"})
	assert.ErrorIs(t, err, ErrInvalidMode)
}

func TestScanResolve_EmptyBarcode(t *testing.T) {
	svc := NewScanService(notFoundRepo(), emptyCatalog(), logger.Nop())

	_, err := svc.Resolve(context.Background(), models.ScanRequest{Barcode: "   "})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestScanResolve_LocalLookupFailure(t *testing.T) {
	dbErr := errors.New("connection refused")
	repo := &mockInventoryRepository{
		findAnyByBarcodeFunc: func(_ context.Context, _ string) (map[string]any, error) {
			return nil, dbErr
		},
	}
	svc := NewScanService(repo, emptyCatalog(), logger.Nop())

	_, err := svc.Resolve(context.Background(), models.ScanRequest{Barcode: "123"})
	require.Error(t, err)
	assert.ErrorIs(t, err, dbErr)

	var notFound *NotInCatalogError
	assert.False(t, errors.As(err, &notFound), "infrastructure failures must not masquerade as not-in-catalog")
}

func TestScanResolve_CatalogFailure(t *testing.T) {
	catalog := &mockCatalog{
		lookupFunc: func(_ context.Context, _ string) (adapter.CatalogItem, error) {
			return adapter.CatalogItem{}, adapter.ErrCatalogUnavailable
		},
	}
	svc := NewScanService(notFoundRepo(), catalog, logger.Nop())

	_, err := svc.Resolve(context.Background(), models.ScanRequest{Barcode: "123"})
	assert.ErrorIs(t, err, adapter.ErrCatalogUnavailable)
}
