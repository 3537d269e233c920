package models

import "time"

// HealthResponse is the payload of GET /api/health. The endpoint always
// answers 200; a failing database is reported through Status "degraded"
// rather than an error status code.
type HealthResponse struct {
	// Status is "healthy" when the database answers the ping,
	// "degraded" otherwise.
	Status string `json:"status"`

	// Database is "healthy" or the error text returned by the ping.
	Database string `json:"database"`

	// Timestamp is the server time of the check in RFC 3339 format.
	Timestamp string `json:"timestamp"`
}

// APITestResponse is the payload of GET /api/test, a self-description
// endpoint used by deployment smoke checks.
type APITestResponse struct {
	// Message is a fixed human-readable banner.
	Message string `json:"message"`

	// Status is always "success" when the API is reachable.
	Status string `json:"status"`

	// Version is the running application version.
	Version string `json:"version"`

	// Features lists the capability flags of this build.
	Features []string `json:"features"`

	// Timestamp is the server time of the call in RFC 3339 format.
	Timestamp string `json:"timestamp"`
}

// LoginRequest carries the credentials submitted to POST /api/login.
type LoginRequest struct {
	// Email is the address the user registered with.
	Email string `json:"email"`

	// Password is the plaintext password; it is compared against the
	// stored bcrypt hash and never persisted.
	Password string `json:"password"`
}

// LoginResponse is the payload returned on successful login.
type LoginResponse struct {
	// AccessToken is the signed JWT the client must present as a
	// Bearer token on authenticated endpoints.
	AccessToken string `json:"access_token"`

	// User is the public view of the authenticated account.
	User User `json:"user"`
}

// ProfileResponse is the payload of GET /api/user/profile.
type ProfileResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	CompanyID int64  `json:"company_id"`

	// LastLogin is the RFC 3339 time of the previous successful login,
	// or null when the user has never logged in.
	LastLogin *string `json:"last_login"`
}

// NewProfileResponse builds the profile payload for a user record,
// formatting LastLogin as RFC 3339 when it is set.
func NewProfileResponse(user User) ProfileResponse {
	resp := ProfileResponse{
		ID:        user.UserID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role,
		CompanyID: user.CompanyID,
	}
	if user.LastLogin.Valid {
		lastLogin := user.LastLogin.Time.Format(time.RFC3339)
		resp.LastLogin = &lastLogin
	}
	return resp
}

// ErrorResponse is the uniform error payload of all API endpoints.
type ErrorResponse struct {
	Error string `json:"error"`
}
