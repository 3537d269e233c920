// Package config provides configuration loading, merging, and resolution
// facilities for the ERP application.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//  4. Per-target fallback defaults
//
// The main entry points are [GetServerConfig] for the backend process and
// [GetClientConfig] for API client configuration. The client API base URL is
// resolved by [ResolveAPIBaseURL]: an environment override when present and
// non-empty, the deployment target's fallback otherwise. The resolved value
// is logged once and returned as part of an immutable [ClientConfig] that
// callers inject into consumers explicitly; no package-level mutable state is
// exported.
package config
