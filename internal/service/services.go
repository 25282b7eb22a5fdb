package service

import (
	"github.com/antonsh/stockscan/internal/adapter"
	"github.com/antonsh/stockscan/internal/config"
	"github.com/antonsh/stockscan/internal/logger"
	"github.com/antonsh/stockscan/internal/store"
)

type Services struct {
	AuthService      AuthService
	InventoryService InventoryService
	ScanService      ScanService
}

// NewServices wires the service layer. The external catalog provider is the
// resty-backed client when a catalog URL is configured, otherwise the
// built-in single-item stub.
func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	var catalog adapter.CatalogProvider
	if cfg.Adapter.CatalogURL != "" {
		catalog = adapter.NewHTTPCatalog(cfg.Adapter, logger)
	} else {
		catalog = adapter.NewStubCatalog(cfg.Adapter.StubBarcode)
	}

	return &Services{
		AuthService:      NewAuthService(storages.UserRepository, cfg.Auth, logger),
		InventoryService: NewInventoryService(storages.InventoryRepository, logger),
		ScanService:      NewScanService(storages.InventoryRepository, catalog, logger),
	}
}
