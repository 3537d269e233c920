// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Happy Deal Transit

package config

import "time"

// Target identifies the deployment target a client configuration is resolved
// for. The targets differ only in their API base URL fallback.
type Target string

const (
	// TargetWeb is the hosted deployment; its fallback points at the
	// production backend on Vercel.
	TargetWeb Target = "web"

	// TargetLocal is a developer workstation; its fallback points at a
	// locally running backend.
	TargetLocal Target = "local"
)

const (
	defaultAPIBaseURLWeb   = "https://my-erp-backend-theta.vercel.app"
	defaultAPIBaseURLLocal = "http://localhost:5000"

	defaultHTTPAddress    = "0.0.0.0:5000"
	defaultRequestTimeout = 30 * time.Second

	defaultVersion       = "3.3-STABLE"
	defaultTokenIssuer   = "happydeal-erp"
	defaultTokenDuration = 24 * time.Hour

	defaultDSN       = "instance/erp_database.db"
	defaultUploadDir = "instance/uploads"
)

// APIBaseURLFallback returns the hardcoded API base URL for the given
// deployment target. Unknown targets fall back to the web deployment value
// so the resolved URL is never empty.
func APIBaseURLFallback(target Target) string {
	if target == TargetLocal {
		return defaultAPIBaseURLLocal
	}

	return defaultAPIBaseURLWeb
}

// defaultConfig returns the lowest-priority configuration source: the
// fallback values a deployment runs with when nothing else is supplied.
//
// Client.APIBaseURL is deliberately left empty here; the API URL fallback is
// applied by [ResolveAPIBaseURL] in [GetClientConfig] so that the override
// and the fallback stay distinguishable after merging.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Version:       defaultVersion,
			TokenIssuer:   defaultTokenIssuer,
			TokenDuration: defaultTokenDuration,
		},
		Server: Server{
			HTTPAddress:    defaultHTTPAddress,
			RequestTimeout: defaultRequestTimeout,
		},
		Storage: Storage{
			DB: DB{
				DSN: defaultDSN,
			},
			Uploads: Uploads{
				Dir:               defaultUploadDir,
				AllowedExtensions: []string{"csv", "xlsx", "xls", "json"},
			},
		},
		Client: Client{
			RequestTimeout: defaultRequestTimeout,
		},
		CORS: CORS{
			AllowedOrigins: []string{
				"http://localhost:3000",
				"http://127.0.0.1:3000",
				"https://*.vercel.app",
				"https://my-erp-frontend-delta.vercel.app",
			},
		},
		Company: Company{
			Name:         "Happy Deal Transit",
			BaseCurrency: "MAD",
		},
	}
}
