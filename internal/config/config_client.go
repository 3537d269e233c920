package config

import (
	"fmt"
	"time"

	"github.com/happydeal-transit/erp/internal/logger"
)

// ClientConfig is the immutable configuration view handed to API client
// consumers. It is created once per process and injected explicitly;
// consumers must not re-resolve the base URL themselves.
type ClientConfig struct {
	// APIBaseURL is the resolved base URL of the ERP backend. Guaranteed
	// non-empty: an absent or empty override resolves to the deployment
	// target's fallback.
	APIBaseURL string

	// RequestTimeout is the default timeout for outbound API requests.
	RequestTimeout time.Duration

	// Version is the application version string, reported by the client
	// in diagnostics.
	Version string
}

// GetClientConfig builds the client configuration view for the given
// deployment target.
//
// It merges the shared sources via the config builder, resolves the API base
// URL with [ResolveAPIBaseURL] (environment/flag/file override first, the
// target's hardcoded fallback otherwise), and emits the single diagnostic
// line "API URL: <resolved value>" on log. The line is informational;
// callers must use the returned value, not the log.
func GetClientConfig(target Target, log *logger.Logger) (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	apiBaseURL := ResolveAPIBaseURL(cfg.Client.APIBaseURL, APIBaseURLFallback(target))
	log.Info().Msgf("API URL: %s", apiBaseURL)

	clientCfg := &ClientConfig{
		APIBaseURL:     apiBaseURL,
		RequestTimeout: cfg.Client.RequestTimeout,
		Version:        cfg.App.Version,
	}

	return clientCfg, clientCfg.validate()
}
