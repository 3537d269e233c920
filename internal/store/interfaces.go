package store

import (
	"context"
	"time"

	"github.com/happydeal-transit/erp/models"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	TouchLastLogin(ctx context.Context, userID int64, at time.Time) error
}

type CompanyRepository interface {
	CreateCompany(ctx context.Context, company models.Company) (models.Company, error)
	FirstCompany(ctx context.Context) (models.Company, error)
}
