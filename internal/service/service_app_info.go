package service

import (
	"context"
	"fmt"

	"github.com/happydeal-transit/erp/internal/config"
	"github.com/happydeal-transit/erp/internal/logger"
)

// DatabaseHealthy is the status string reported when the database answers
// the liveness ping.
const DatabaseHealthy = "healthy"

// features lists the capability flags of this build, reported by the
// connectivity-test endpoint.
var features = []string{
	"role-based-access",
	"multi-currency",
	"enhanced-error-handling",
}

// Pinger is the slice of the database surface the health check needs.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type appInfoService struct {
	appVersion string
	pinger     Pinger

	logger *logger.Logger
}

func NewAppInfoService(cfg config.App, pinger Pinger, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion: cfg.Version,
		pinger:     pinger,
		logger:     logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

func (s *appInfoService) GetFeatures(ctx context.Context) []string {
	out := make([]string, len(features))
	copy(out, features)
	return out
}

// CheckDatabase pings the database and reports "healthy" or the error text.
func (s *appInfoService) CheckDatabase(ctx context.Context) string {
	if err := s.pinger.PingContext(ctx); err != nil {
		s.logger.Err(err).Str("func", "*appInfoService.CheckDatabase").Msg("database ping failed")
		return fmt.Sprintf("error: %s", err)
	}
	return DatabaseHealthy
}
