package adapter

import "errors"

var (
	// ErrNotInCatalog is returned by a [CatalogProvider] when the barcode is
	// unknown to the external catalog. It is an expected negative result,
	// not a provider failure.
	ErrNotInCatalog = errors.New("barcode not in external catalog")

	// ErrCatalogUnavailable is returned when the external catalog cannot be
	// reached or answers with an unexpected status.
	ErrCatalogUnavailable = errors.New("external catalog unavailable")
)
