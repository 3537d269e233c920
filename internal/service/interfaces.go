package service

import (
	"context"

	"github.com/happydeal-transit/erp/models"
)

type AuthService interface {
	Login(ctx context.Context, email, password string) (models.User, error)
	RegisterUser(ctx context.Context, user models.User, password string) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	Profile(ctx context.Context, userID int64) (models.User, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetFeatures(ctx context.Context) []string
	CheckDatabase(ctx context.Context) string
}

// BootstrapService prepares a fresh database: it seeds the company record
// and the default accounts exactly once.
type BootstrapService interface {
	EnsureDefaultData(ctx context.Context) error
}
