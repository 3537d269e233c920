// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Happy Deal Transit

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/happydeal-transit/erp/models"
)

// userColumns is the full column list of the users table, in scan order.
var userColumns = []string{
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

// buildInsertUserQuery builds the parameterised INSERT for a new user
// account. The generated row identifier and creation timestamp are
// returned by the statement so the caller can scan them back.
func buildInsertUserQuery(ph sq.PlaceholderFormat, user models.User) (string, []any, error) {
	return sq.Insert(user.TableName()).
		Columns("name", "email", "password_hash", "role", "company_id", "status").
		Values(user.Name, user.Email, user.PasswordHash, user.Role, user.CompanyID, user.Status).
		Suffix("RETURNING id, created_at").
		PlaceholderFormat(ph).
		ToSql()
}

// buildFindUserByEmailQuery builds the lookup used by login. Only active
// accounts are matched; suspended and deleted accounts never authenticate.
func buildFindUserByEmailQuery(ph sq.PlaceholderFormat, email string) (string, []any, error) {
	return sq.Select(userColumns...).
		From("users").
		Where(sq.Eq{"email": email}).
		Where(sq.Eq{"status": models.UserStatusActive}).
		PlaceholderFormat(ph).
		ToSql()
}

// buildFindUserByIDQuery builds the primary-key lookup used by the
// profile endpoint.
func buildFindUserByIDQuery(ph sq.PlaceholderFormat, userID int64) (string, []any, error) {
	return sq.Select(userColumns...).
		From("users").
		Where(sq.Eq{"id": userID}).
		PlaceholderFormat(ph).
		ToSql()
}

// buildTouchLastLoginQuery builds the UPDATE that records a successful
// login time on the user row.
func buildTouchLastLoginQuery(ph sq.PlaceholderFormat, userID int64, at time.Time) (string, []any, error) {
	return sq.Update("users").
		Set("last_login", at).
		Where(sq.Eq{"id": userID}).
		PlaceholderFormat(ph).
		ToSql()
}

// companyColumns is the full column list of the companies table, in scan order.
var companyColumns = []string{
	"id",
	"name",
	"address",
	"phone",
	"email",
	"tax_id",
	"base_currency",
	"status",
	"created_at",
}

func buildInsertCompanyQuery(ph sq.PlaceholderFormat, company models.Company) (string, []any, error) {
	return sq.Insert(company.TableName()).
		Columns("name", "address", "phone", "email", "tax_id", "base_currency", "status").
		Values(company.Name, company.Address, company.Phone, company.Email, company.TaxID, company.BaseCurrency, company.Status).
		Suffix("RETURNING id, created_at").
		PlaceholderFormat(ph).
		ToSql()
}

func buildFirstCompanyQuery(ph sq.PlaceholderFormat) (string, []any, error) {
	return sq.Select(companyColumns...).
		From("companies").
		OrderBy("id ASC").
		Limit(1).
		PlaceholderFormat(ph).
		ToSql()
}
