package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/happydeal-transit/erp/internal/config"
	"github.com/happydeal-transit/erp/internal/logger"
	"github.com/happydeal-transit/erp/internal/store"
	"github.com/happydeal-transit/erp/internal/utils"
	"github.com/happydeal-transit/erp/models"
)

// Default accounts created on a fresh database. The passwords are
// development conveniences; production deployments are expected to change
// them immediately after first login.
const (
	defaultAdminName     = "Admin User"
	defaultAdminEmail    = "admin@hdtransit.com"
	defaultAdminPassword = "admin123"

	defaultUserName     = "User Test"
	defaultUserEmail    = "user@hdtransit.com"
	defaultUserPassword = "user123"
)

type bootstrapService struct {
	companyRepository store.CompanyRepository
	userRepository    store.UserRepository
	company           config.Company

	logger *logger.Logger
}

func NewBootstrapService(companyRepository store.CompanyRepository, userRepository store.UserRepository, company config.Company, logger *logger.Logger) BootstrapService {
	return &bootstrapService{
		companyRepository: companyRepository,
		userRepository:    userRepository,
		company:           company,
		logger:            logger,
	}
}

// EnsureDefaultData seeds a fresh database with the configured company
// record, one admin account and one regular account. An already-seeded
// database is left untouched; the presence of any company record is the
// initialization marker.
func (b *bootstrapService) EnsureDefaultData(ctx context.Context) error {
	_, err := b.companyRepository.FirstCompany(ctx)
	if err == nil {
		b.logger.Debug().Msg("database already initialized")
		return nil
	}
	if !errors.Is(err, store.ErrNoCompanyWasFound) {
		return fmt.Errorf("checking for existing company failed: %w", err)
	}

	company, err := b.companyRepository.CreateCompany(ctx, models.Company{
		Name:         b.company.Name,
		Address:      b.company.Address,
		Phone:        b.company.Phone,
		Email:        b.company.Email,
		TaxID:        b.company.TaxID,
		BaseCurrency: b.company.BaseCurrency,
		Status:       "active",
	})
	if err != nil {
		return fmt.Errorf("seeding company failed: %w", err)
	}

	if err := b.seedUser(ctx, company.CompanyID, defaultAdminName, defaultAdminEmail, defaultAdminPassword, models.UserRoleAdmin); err != nil {
		return err
	}
	if err := b.seedUser(ctx, company.CompanyID, defaultUserName, defaultUserEmail, defaultUserPassword, models.UserRoleUser); err != nil {
		return err
	}

	b.logger.Info().
		Str("company", company.Name).
		Str("admin", defaultAdminEmail).
		Msg("database initialized with default data")

	return nil
}

func (b *bootstrapService) seedUser(ctx context.Context, companyID int64, name, email, password, role string) error {
	hash, err := utils.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hashing default password for %s failed: %w", email, err)
	}

	_, err = b.userRepository.CreateUser(ctx, models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		CompanyID:    companyID,
		Status:       models.UserStatusActive,
	})
	if err != nil && !errors.Is(err, store.ErrEmailAlreadyExists) {
		return fmt.Errorf("seeding user %s failed: %w", email, err)
	}

	return nil
}
