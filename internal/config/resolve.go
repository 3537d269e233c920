// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Happy Deal Transit

package config

// ResolveAPIBaseURL chooses between an externally supplied override and a
// hardcoded fallback to produce the final API base URL.
//
// The override comes from the API_URL environment variable (or the -api-url
// flag); an empty string means "absent" and yields the fallback. A non-empty
// override is returned exactly as supplied: no trimming, no validation, no
// normalization. A malformed override therefore passes through unchanged and
// manifests downstream in the consuming HTTP client, not here.
//
// The function is pure and cannot fail; with a non-empty fallback the result
// is always non-empty.
func ResolveAPIBaseURL(override, fallback string) string {
	if override == "" {
		return fallback
	}

	return override
}
