// Package adapter integrates the service with external collaborators.
// Its only concern today is the third-party UPC catalog consulted by the
// scan endpoint after a local inventory miss.
package adapter

import "context"

// CatalogItem is a product record known to an external barcode catalog.
// Price is a pointer because catalogs may list items without pricing.
type CatalogItem struct {
	Barcode string   `json:"barcode"`
	Name    string   `json:"name"`
	Price   *float64 `json:"price"`
}

// CatalogProvider resolves a barcode against an external product catalog.
//
// Lookup returns [ErrNotInCatalog] when the provider does not know the
// barcode; any other error indicates a provider failure.
type CatalogProvider interface {
	Lookup(ctx context.Context, barcode string) (CatalogItem, error)
}
