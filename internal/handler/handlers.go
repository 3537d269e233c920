package handler

import (
	"github.com/happydeal-transit/erp/internal/config"
	"github.com/happydeal-transit/erp/internal/handler/http"
	"github.com/happydeal-transit/erp/internal/logger"
	"github.com/happydeal-transit/erp/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, cors config.CORS, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, cors, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
