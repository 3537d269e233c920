package service

import (
	"github.com/happydeal-transit/erp/internal/config"
	"github.com/happydeal-transit/erp/internal/logger"
	"github.com/happydeal-transit/erp/internal/store"
)

type Services struct {
	AuthService      AuthService
	AppInfoService   AppInfoService
	BootstrapService BootstrapService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, storages.DB, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:      NewAuthService(storages.UserRepository, cfg.App, logger),
		AppInfoService:   appInfoService,
		BootstrapService: NewBootstrapService(storages.CompanyRepository, storages.UserRepository, cfg.Company, logger),
	}, nil
}
