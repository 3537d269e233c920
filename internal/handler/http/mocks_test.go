package http

import (
	"context"
	"testing"

	"github.com/happydeal-transit/erp/internal/config"
	"github.com/happydeal-transit/erp/internal/logger"
	"github.com/happydeal-transit/erp/internal/service"
	"github.com/happydeal-transit/erp/models"
)

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	loginFn        func(ctx context.Context, email, password string) (models.User, error)
	registerUserFn func(ctx context.Context, user models.User, password string) (models.User, error)
	createTokenFn  func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Token, error)
	profileFn      func(ctx context.Context, userID int64) (models.User, error)
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (models.User, error) {
	return m.loginFn(ctx, email, password)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, user models.User, password string) (models.User, error) {
	return m.registerUserFn(ctx, user, password)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

func (m *mockAuthService) Profile(ctx context.Context, userID int64) (models.User, error) {
	return m.profileFn(ctx, userID)
}

// mockAppInfoService implements service.AppInfoService for unit tests.
type mockAppInfoService struct {
	version  string
	features []string
	dbStatus string
}

func (m *mockAppInfoService) GetAppVersion(ctx context.Context) string { return m.version }

func (m *mockAppInfoService) GetFeatures(ctx context.Context) []string { return m.features }

func (m *mockAppInfoService) CheckDatabase(ctx context.Context) string { return m.dbStatus }

// newHandlerWithAuth builds a Handler with the given AuthService mock.
func newHandlerWithAuth(t *testing.T, auth service.AuthService) *Handler {
	t.Helper()
	svcs := &service.Services{
		AppInfoService: &mockAppInfoService{version: "test", dbStatus: service.DatabaseHealthy},
		AuthService:    auth,
	}
	return NewHandler(svcs, config.CORS{}, logger.Nop())
}
