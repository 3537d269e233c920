package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	sq "github.com/Masterminds/squirrel"

	"github.com/happydeal-transit/erp/internal/logger"
	"github.com/happydeal-transit/erp/models"
)

func newTestCompanyRepo(t *testing.T) (*companyRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	wrapped := &DB{
		DB:                 db,
		driver:             DriverPostgres,
		placeholder:        sq.Dollar,
		errorClassificator: NewPostgresErrorClassifier(),
		logger:             l,
	}
	repo := &companyRepository{
		db:     wrapped,
		logger: l,
	}
	return repo, mock, db
}

func TestCreateCompany_Success(t *testing.T) {
	repo, mock, db := newTestCompanyRepo(t)
	defer db.Close()

	company := models.Company{
		Name:         "Happy Deal Transit",
		Address:      "Casablanca, Morocco",
		Phone:        "+212 522 000 000",
		Email:        "contact@happydealtransit.ma",
		BaseCurrency: "MAD",
		Status:       "active",
	}

	now := time.Now()

	mock.ExpectQuery("INSERT INTO companies").
		WithArgs(company.Name, company.Address, company.Phone, company.Email, company.TaxID, company.BaseCurrency, company.Status).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(1, now))

	created, err := repo.CreateCompany(context.Background(), company)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.CompanyID != 1 {
		t.Errorf("expected company id 1, got %d", created.CompanyID)
	}
}

func TestFirstCompany_Success(t *testing.T) {
	repo, mock, db := newTestCompanyRepo(t)
	defer db.Close()

	rows := sqlmock.
		NewRows([]string{"id", "name", "address", "phone", "email", "tax_id", "base_currency", "status", "created_at"}).
		AddRow(1, "Happy Deal Transit", "Casablanca", "+212", "c@happydealtransit.ma", "", "MAD", "active", time.Now())

	mock.ExpectQuery("SELECT .+ FROM companies").
		WillReturnRows(rows)

	company, err := repo.FirstCompany(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if company.BaseCurrency != "MAD" {
		t.Errorf("expected base currency MAD, got %q", company.BaseCurrency)
	}
}

func TestFirstCompany_EmptyTable(t *testing.T) {
	repo, mock, db := newTestCompanyRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT .+ FROM companies").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FirstCompany(context.Background())
	if !errors.Is(err, ErrNoCompanyWasFound) {
		t.Fatalf("expected ErrNoCompanyWasFound, got: %v", err)
	}
}
