package service

import (
	"context"
	"testing"

	"github.com/antonsh/stockscan/internal/logger"
	"github.com/antonsh/stockscan/internal/store"
	"github.com/antonsh/stockscan/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func int64Ptr(v int64) *int64 { return &v }

func float64Ptr(v float64) *float64 { return &v }

func TestInventoryServiceList_CompanyRequired(t *testing.T) {
	svc := NewInventoryService(&mockInventoryRepository{}, logger.Nop())

	_, err := svc.List(context.Background(), nil, "", 0, 0)
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestInventoryServiceList_LimitDefaultsAndClamps(t *testing.T) {
	tests := []struct {
		name      string
		limit     int64
		offset    int64
		wantLimit uint64
		wantOff   uint64
	}{
		{name: "zero limit gets default", limit: 0, wantLimit: 50},
		{name: "negative limit gets default", limit: -5, wantLimit: 50},
		{name: "oversized limit is clamped", limit: 500, wantLimit: 200},
		{name: "in-range limit kept", limit: 25, wantLimit: 25},
		{name: "negative offset treated as zero", limit: 10, offset: -3, wantLimit: 10, wantOff: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var captured models.InventoryFilter
			repo := &mockInventoryRepository{
				listFunc: func(_ context.Context, filter models.InventoryFilter) ([]models.InventoryItem, error) {
					captured = filter
					return []models.InventoryItem{}, nil
				},
			}
			svc := NewInventoryService(repo, logger.Nop())

			_, err := svc.List(context.Background(), int64Ptr(1), "", tt.limit, tt.offset)
			require.NoError(t, err)
			assert.Equal(t, tt.wantLimit, captured.Limit)
			assert.Equal(t, tt.wantOff, captured.Offset)
		})
	}
}

func TestInventoryServiceList_TrimsQuery(t *testing.T) {
	var captured models.InventoryFilter
	repo := &mockInventoryRepository{
		listFunc: func(_ context.Context, filter models.InventoryFilter) ([]models.InventoryItem, error) {
			captured = filter
			return nil, nil
		},
	}
	svc := NewInventoryService(repo, logger.Nop())

	_, err := svc.List(context.Background(), int64Ptr(1), "  cola  ", 10, 0)
	require.NoError(t, err)
	assert.Equal(t, "cola", captured.Query)
}

func TestInventoryServiceGet_Validation(t *testing.T) {
	svc := NewInventoryService(&mockInventoryRepository{}, logger.Nop())

	_, err := svc.Get(context.Background(), nil, "123")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.Get(context.Background(), int64Ptr(1), "   ")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestInventoryServiceGet_PropagatesNotFound(t *testing.T) {
	repo := &mockInventoryRepository{
		getFunc: func(_ context.Context, _ int64, _ string) (models.InventoryItem, error) {
			return models.InventoryItem{}, store.ErrItemNotFound
		},
	}
	svc := NewInventoryService(repo, logger.Nop())

	_, err := svc.Get(context.Background(), int64Ptr(1), "0000000000000")
	assert.ErrorIs(t, err, store.ErrItemNotFound)
}

func TestInventoryServiceUpsert_FieldValidation(t *testing.T) {
	svc := NewInventoryService(&mockInventoryRepository{}, logger.Nop())

	tests := []struct {
		name    string
		req     models.UpsertRequest
		wantMsg string
	}{
		{
			name:    "missing company",
			req:     models.UpsertRequest{Barcode: "1", Name: "x"},
			wantMsg: "company_id required",
		},
		{
			name:    "missing barcode",
			req:     models.UpsertRequest{CompanyID: int64Ptr(1), Name: "x"},
			wantMsg: "barcode required",
		},
		{
			name:    "missing name",
			req:     models.UpsertRequest{CompanyID: int64Ptr(1), Barcode: "1"},
			wantMsg: "name required",
		},
		{
			name:    "negative price",
			req:     models.UpsertRequest{CompanyID: int64Ptr(1), Barcode: "1", Name: "x", Price: float64Ptr(-1)},
			wantMsg: "non-negative",
		},
		{
			name:    "negative qty",
			req:     models.UpsertRequest{CompanyID: int64Ptr(1), Barcode: "1", Name: "x", Qty: int64Ptr(-1)},
			wantMsg: "non-negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.Upsert(context.Background(), tt.req)
			require.ErrorIs(t, err, ErrInvalidDataProvided)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestInventoryServiceUpsert_DefaultsAndTrim(t *testing.T) {
	var captured models.InventoryItem
	repo := &mockInventoryRepository{
		upsertFunc: func(_ context.Context, item models.InventoryItem) error {
			captured = item
			return nil
		},
	}
	svc := NewInventoryService(repo, logger.Nop())

	err := svc.Upsert(context.Background(), models.UpsertRequest{
		CompanyID: int64Ptr(1),
		Barcode:   " 4600000000001 ",
		Name:      " Cola 330ml ",
	})
	require.NoError(t, err)

	assert.Equal(t, "4600000000001", captured.Barcode)
	assert.Equal(t, "Cola 330ml", captured.Name)
	assert.Zero(t, captured.Price, "omitted price defaults to 0")
	assert.Zero(t, captured.Qty, "omitted qty defaults to 0")
}

func TestInventoryServiceAdjust_Validation(t *testing.T) {
	svc := NewInventoryService(&mockInventoryRepository{}, logger.Nop())

	tests := []struct {
		name string
		req  models.AdjustRequest
	}{
		{name: "missing company", req: models.AdjustRequest{Barcode: "1", Delta: int64Ptr(1)}},
		{name: "missing barcode", req: models.AdjustRequest{CompanyID: int64Ptr(1), Delta: int64Ptr(1)}},
		{name: "missing delta", req: models.AdjustRequest{CompanyID: int64Ptr(1), Barcode: "1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Adjust(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

func TestInventoryServiceAdjust_Success(t *testing.T) {
	repo := &mockInventoryRepository{
		adjustQtyFunc: func(_ context.Context, companyID int64, barcode string, delta int64) (models.InventoryItem, error) {
			assert.Equal(t, int64(1), companyID)
			assert.Equal(t, "4600000000001", barcode)
			assert.Equal(t, int64(-5), delta)
			return models.InventoryItem{ID: 5, CompanyID: companyID, Barcode: barcode, Qty: 35}, nil
		},
	}
	svc := NewInventoryService(repo, logger.Nop())

	item, err := svc.Adjust(context.Background(), models.AdjustRequest{
		CompanyID: int64Ptr(1),
		Barcode:   "4600000000001",
		Delta:     int64Ptr(-5),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(35), item.Qty)
}
