// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Happy Deal Transit

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the ERP
// application. It aggregates all sub-configurations and is populated by
// merging values from environment variables, command-line flags, an optional
// JSON file, and fallback defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the version string and
	// JWT token parameters.
	App App `envPrefix:"APP_"`

	// Server holds network address and timeout settings for the HTTP
	// server.
	Server Server `envPrefix:"SERVER_"`

	// Storage holds configuration for the relational database and the
	// upload directory.
	Storage Storage `envPrefix:"STORAGE_"`

	// Client holds settings for the outbound ERP API client. The API_URL
	// variable is deliberately unprefixed: it is the single canonical
	// override for the API base URL across all deployment targets.
	Client Client

	// CORS holds the allowed browser origins for the HTTP API.
	CORS CORS `envPrefix:"CORS_"`

	// Company holds the identity of the company record seeded into a
	// fresh database.
	Company Company `envPrefix:"COMPANY_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged below the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config
	// flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values that control versioning
// and the JWT token lifecycle.
type App struct {
	// Version is the version string of the running application
	// (e.g. "3.3-STABLE"). Exposed via the /api/test endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// TokenSignKey is the secret key used to sign and verify JWT tokens.
	// Must be kept confidential. It has no default; the server refuses to
	// start without it.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a JWT token remains valid after
	// issuance (e.g. "24h", "30m").
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`
}

// Server holds network and timeout settings for the inbound HTTP transport.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:5000").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the configuration for the persistence backends.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`

	// Uploads holds the file-import staging directory settings.
	Uploads Uploads `envPrefix:"UPLOADS_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN selects and configures the database driver. A
	// "postgres://" / "postgresql://" URI opens PostgreSQL via pgx;
	// any other non-empty value is treated as a SQLite file path
	// (created on first use).
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Uploads holds settings for the directory that staged import files
// (CSV/Excel/JSON) are written to.
type Uploads struct {
	// Dir is the path of the upload staging directory.
	// Env: STORAGE_UPLOADS_DIR
	Dir string `env:"DIR"`

	// AllowedExtensions lists the accepted import file extensions,
	// without leading dots.
	// Env: STORAGE_UPLOADS_ALLOWED_EXTENSIONS (comma-separated)
	AllowedExtensions []string `env:"ALLOWED_EXTENSIONS" envSeparator:","`
}

// Client holds settings for the outbound ERP API client.
type Client struct {
	// APIBaseURL is the environment override for the API base URL.
	// When empty the deployment target's fallback is used; a non-empty
	// value is passed through to consumers unchanged: no trimming,
	// validation, or normalization happens at resolution time.
	// Env: API_URL
	APIBaseURL string `env:"API_URL"`

	// RequestTimeout is the default timeout for outbound API requests.
	// Env: API_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"API_REQUEST_TIMEOUT"`
}

// CORS holds the browser origins the HTTP API accepts requests from.
type CORS struct {
	// AllowedOrigins lists the origins allowed by the CORS middleware.
	// Env: CORS_ALLOWED_ORIGINS (comma-separated)
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`
}

// Company holds the identity seeded into the companies table of a fresh
// database.
type Company struct {
	// Name is the legal company name. Env: COMPANY_NAME
	Name string `env:"NAME"`

	// Address is the postal address. Env: COMPANY_ADDRESS
	Address string `env:"ADDRESS"`

	// Phone is the contact phone number. Env: COMPANY_PHONE
	Phone string `env:"PHONE"`

	// Email is the contact address. Env: COMPANY_EMAIL
	Email string `env:"EMAIL"`

	// TaxID is the fiscal identifier. Env: COMPANY_TAX_ID
	TaxID string `env:"TAX_ID"`

	// BaseCurrency is the ISO 4217 reporting currency.
	// Env: COMPANY_BASE_CURRENCY
	BaseCurrency string `env:"BASE_CURRENCY"`
}

// GetServerConfig loads, merges, and validates the backend configuration
// from all available sources in the following priority order (earlier
// sources win for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Fallback defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetServerConfig() (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
	if err != nil {
		return nil, err
	}

	if err := cfg.validateServer(); err != nil {
		return nil, err
	}

	return cfg, nil
}
