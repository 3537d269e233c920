// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Happy Deal Transit

package store

import (
	"strings"
	"testing"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/happydeal-transit/erp/models"
)

func Test_buildFindUserByEmailQuery_SQLContainsParts(t *testing.T) {
	email := "admin@happydealtransit.ma"

	query, args, err := buildFindUserByEmailQuery(sq.Dollar, email)
	require.NoError(t, err)

	// args checks
	require.Len(t, args, 2)
	require.Equal(t, email, args[0])
	require.Equal(t, models.UserStatusActive, args[1])

	// query checks (contains parts)
	q := strings.ToLower(query)

	require.Contains(t, q, "select")
	require.Contains(t, q, "from users")
	require.Contains(t, q, "where")
	require.Contains(t, q, "email")
	require.Contains(t, q, "status")

	// placeholder format should be $1 (Postgres)
	require.Contains(t, query, "$1")
}

func Test_buildFindUserByEmailQuery_SelectsAllExpectedColumns(t *testing.T) {
	query, _, err := buildFindUserByEmailQuery(sq.Dollar, "x@happydealtransit.ma")
	require.NoError(t, err)

	q := strings.ToLower(query)

	// Check that all expected columns are present in the SELECT section.
	// This is a "contains" check; it does not enforce order but catches regressions quickly.
	cols := []string{
		"id",
		"name",
		"email",
		"password_hash",
		"role",
		"company_id",
		"status",
		"created_at",
		"last_login",
	}
	for _, c := range cols {
		require.Contains(t, q, c)
	}
}

func Test_buildFindUserByEmailQuery_SQLitePlaceholders(t *testing.T) {
	query, args, err := buildFindUserByEmailQuery(sq.Question, "x@happydealtransit.ma")
	require.NoError(t, err)

	require.Len(t, args, 2)
	assert.Contains(t, query, "?")
	assert.NotContains(t, query, "$1")
}

func Test_buildInsertUserQuery(t *testing.T) {
	user := models.User{
		Name:         "Youssef",
		Email:        "youssef@happydealtransit.ma",
		PasswordHash: "$2a$10$hash",
		Role:         models.UserRoleAdmin,
		CompanyID:    1,
		Status:       models.UserStatusActive,
	}

	query, args, err := buildInsertUserQuery(sq.Dollar, user)
	require.NoError(t, err)

	q := strings.ToUpper(query)
	assert.True(t, strings.Contains(q, "INSERT INTO"))
	assert.True(t, strings.Contains(query, "users"))
	assert.True(t, strings.Contains(q, "RETURNING"))

	// password_hash travels as an opaque argument, never inlined
	assert.NotContains(t, query, user.PasswordHash)

	require.Len(t, args, 6)
	assert.Equal(t, user.Name, args[0])
	assert.Equal(t, user.Email, args[1])
	assert.Equal(t, user.PasswordHash, args[2])
	assert.Equal(t, user.Role, args[3])
	assert.Equal(t, user.CompanyID, args[4])
	assert.Equal(t, user.Status, args[5])
}

func Test_buildTouchLastLoginQuery(t *testing.T) {
	at := time.Date(2026, 2, 14, 9, 30, 0, 0, time.UTC)

	query, args, err := buildTouchLastLoginQuery(sq.Dollar, 42, at)
	require.NoError(t, err)

	q := strings.ToUpper(query)
	assert.True(t, strings.Contains(q, "UPDATE"))
	assert.True(t, strings.Contains(query, "users"))
	assert.True(t, strings.Contains(query, "last_login"))
	assert.True(t, strings.Contains(q, "WHERE"))

	require.Len(t, args, 2)
	assert.Equal(t, at, args[0])
	assert.Equal(t, int64(42), args[1])
}
