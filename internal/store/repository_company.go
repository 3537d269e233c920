package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/happydeal-transit/erp/internal/logger"
	"github.com/happydeal-transit/erp/models"
)

type companyRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewCompanyRepository(db *DB, logger *logger.Logger) CompanyRepository {
	logger.Debug().Msg("CompanyRepository created")
	return &companyRepository{
		db:     db,
		logger: logger,
	}
}

// CreateCompany inserts a new company record and scans back the generated
// row identifier and creation timestamp.
func (r *companyRepository) CreateCompany(ctx context.Context, company models.Company) (models.Company, error) {
	query, args, err := buildInsertCompanyQuery(r.db.placeholder, company)
	if err != nil {
		r.logger.Err(err).Str("func", "*companyRepository.CreateCompany").Msg("error: building insert query")
		return models.Company{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Err(); err != nil {
		r.logger.Err(err).Str("func", "*companyRepository.CreateCompany").Msg("error: insert failed")
		return models.Company{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := row.Scan(&company.CompanyID, &company.CreatedAt); err != nil {
		r.logger.Err(err).Str("func", "*companyRepository.CreateCompany").Msg("error: scanning error")
		return models.Company{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return company, nil
}

// FirstCompany returns the oldest company record. Seeding uses it to decide
// whether a fresh database still needs its default data.
func (r *companyRepository) FirstCompany(ctx context.Context) (models.Company, error) {
	query, args, err := buildFirstCompanyQuery(r.db.placeholder)
	if err != nil {
		r.logger.Err(err).Str("func", "*companyRepository.FirstCompany").Msg("error: building select query")
		return models.Company{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var company models.Company
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Err(); err != nil {
		r.logger.Err(err).Str("func", "*companyRepository.FirstCompany").Msg("error: query failed")
		return models.Company{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if err := row.Scan(
		&company.CompanyID,
		&company.Name,
		&company.Address,
		&company.Phone,
		&company.Email,
		&company.TaxID,
		&company.BaseCurrency,
		&company.Status,
		&company.CreatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Company{}, ErrNoCompanyWasFound
		}
		r.logger.Err(err).Str("func", "*companyRepository.FirstCompany").Msg("error: scanning error")
		return models.Company{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return company, nil
}
