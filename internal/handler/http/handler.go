package http

import (
	"github.com/happydeal-transit/erp/internal/config"
	"github.com/happydeal-transit/erp/internal/logger"
	"github.com/happydeal-transit/erp/internal/service"
)

type Handler struct {
	services *service.Services

	corsAllowedOrigins []string

	logger *logger.Logger
}

func NewHandler(services *service.Services, cors config.CORS, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:           services,
		corsAllowedOrigins: cors.AllowedOrigins,
		logger:             logger,
	}
}
