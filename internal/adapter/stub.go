package adapter

import "context"

// stubCatalog is the built-in demo catalog used when no external catalog URL
// is configured. It recognises exactly one barcode and answers with a canned
// record, simulating a third-party UPC lookup provider.
type stubCatalog struct {
	barcode string
	item    CatalogItem
}

// NewStubCatalog constructs the canned single-item catalog. The recognised
// barcode comes from configuration so demos can pick their own code.
func NewStubCatalog(barcode string) CatalogProvider {
	price := 1.99
	return &stubCatalog{
		barcode: barcode,
		item: CatalogItem{
			Barcode: barcode,
			Name:    "Demo Cola 330ml",
			Price:   &price,
		},
	}
}

func (s *stubCatalog) Lookup(_ context.Context, barcode string) (CatalogItem, error) {
	if barcode != s.barcode {
		return CatalogItem{}, ErrNotInCatalog
	}

	return s.item, nil
}
