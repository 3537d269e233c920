// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Happy Deal Transit

// Package adapter provides transport-layer abstractions for communicating with
// the Happy Deal Transit ERP backend.
//
// The primary abstraction is [ERPClient], which decouples consumers from the
// underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPERPClient]) built on the shared resty HTTP client.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrUnauthorized] for 401, [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/happydeal-transit/erp/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/erp_client_mock.go -package=mock

// ERPClient defines transport-agnostic communication with the ERP backend.
// Implementations are responsible for serialisation, authentication header
// management, and mapping transport-level errors to the sentinel values
// defined in this package.
type ERPClient interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// authenticated requests. It should be called immediately after a
	// successful Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the client, or an
	// empty string if no token has been set yet.
	Token() string

	// Health fetches GET /api/health. The backend answers 200 even when its
	// database is down; callers inspect the payload for the actual state.
	Health(ctx context.Context) (models.HealthResponse, error)

	// APITest fetches GET /api/test, the connectivity self-description
	// endpoint. Useful for verifying which backend a deployment points at.
	APITest(ctx context.Context) (models.APITestResponse, error)

	// Login authenticates against POST /api/login. On success it stores the
	// returned access token via SetToken and returns the server-side user
	// record. Returns [ErrUnauthorized] (wrapped) on invalid credentials.
	Login(ctx context.Context, email, password string) (models.User, error)

	// Profile fetches GET /api/user/profile using the stored bearer token.
	Profile(ctx context.Context) (models.ProfileResponse, error)
}
