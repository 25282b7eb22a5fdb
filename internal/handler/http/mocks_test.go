package http

import (
	"context"

	"github.com/antonsh/stockscan/internal/logger"
	"github.com/antonsh/stockscan/internal/service"
	"github.com/antonsh/stockscan/models"
)

// Hand-rolled service doubles with overridable function fields. Tests set
// only the fields the route under test touches.

type mockAuthService struct {
	registerUserFunc func(ctx context.Context, req models.RegisterRequest) (models.User, error)
	loginFunc        func(ctx context.Context, req models.LoginRequest) (models.User, error)
	createTokenFunc  func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFunc   func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	return m.registerUserFunc(ctx, req)
}

func (m *mockAuthService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	return m.loginFunc(ctx, req)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFunc(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFunc(ctx, tokenString)
}

type mockInventoryService struct {
	listFunc   func(ctx context.Context, companyID *int64, query string, limit, offset int64) ([]models.InventoryItem, error)
	getFunc    func(ctx context.Context, companyID *int64, barcode string) (models.InventoryItem, error)
	upsertFunc func(ctx context.Context, req models.UpsertRequest) error
	adjustFunc func(ctx context.Context, req models.AdjustRequest) (models.InventoryItem, error)
}

func (m *mockInventoryService) List(ctx context.Context, companyID *int64, query string, limit, offset int64) ([]models.InventoryItem, error) {
	return m.listFunc(ctx, companyID, query, limit, offset)
}

func (m *mockInventoryService) Get(ctx context.Context, companyID *int64, barcode string) (models.InventoryItem, error) {
	return m.getFunc(ctx, companyID, barcode)
}

func (m *mockInventoryService) Upsert(ctx context.Context, req models.UpsertRequest) error {
	return m.upsertFunc(ctx, req)
}

func (m *mockInventoryService) Adjust(ctx context.Context, req models.AdjustRequest) (models.InventoryItem, error) {
	return m.adjustFunc(ctx, req)
}

type mockScanService struct {
	resolveFunc func(ctx context.Context, req models.ScanRequest) (models.ScanResponse, error)
}

func (m *mockScanService) Resolve(ctx context.Context, req models.ScanRequest) (models.ScanResponse, error) {
	return m.resolveFunc(ctx, req)
}

// allowAllAuth is a ParseToken stub that authenticates every request as the
// given identity. Used by tests of protected routes that are not about auth.
func allowAllAuth(userID int64, username string, companyID *int64) *mockAuthService {
	return &mockAuthService{
		parseTokenFunc: func(_ context.Context, _ string) (models.Token, error) {
			return models.Token{UserID: userID, Username: username, CompanyID: companyID}, nil
		},
	}
}

func newTestHandler(auth service.AuthService, inventory service.InventoryService, scan service.ScanService) *Handler {
	return NewHandler(&service.Services{
		AuthService:      auth,
		InventoryService: inventory,
		ScanService:      scan,
	}, logger.Nop())
}
