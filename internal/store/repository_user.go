package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/happydeal-transit/erp/internal/logger"
	"github.com/happydeal-transit/erp/models"
)

type userRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("UserRepository created")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser inserts a new account and scans back the generated row
// identifier and creation timestamp. A duplicate email is reported as
// [ErrEmailAlreadyExists].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	query, args, err := buildInsertUserQuery(r.db.placeholder, user)
	if err != nil {
		r.logger.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: building insert query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)

	// create user in db
	if err := row.Err(); err != nil {
		r.logger.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: insert failed")

		if isUniqueViolation(err) {
			return models.User{}, ErrEmailAlreadyExists
		}
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	// scan saved user from db
	if err := row.Scan(&user.UserID, &user.CreatedAt); err != nil {
		if isUniqueViolation(err) {
			return models.User{}, ErrEmailAlreadyExists
		}
		r.logger.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: scanning error")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return user, nil
}

// FindUserByEmail looks up the active account registered under email.
// Suspended accounts are invisible to this lookup, so callers cannot
// authenticate them by accident.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	query, args, err := buildFindUserByEmailQuery(r.db.placeholder, email)
	if err != nil {
		r.logger.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error: building select query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var foundUser models.User
	row := r.db.QueryRowContext(ctx, query, args...)

	// find user by email
	if err := row.Err(); err != nil {
		r.logger.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error: query failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	// scan found user from db
	if err := row.Scan(
		&foundUser.UserID,
		&foundUser.Name,
		&foundUser.Email,
		&foundUser.PasswordHash,
		&foundUser.Role,
		&foundUser.CompanyID,
		&foundUser.Status,
		&foundUser.CreatedAt,
		&foundUser.LastLogin,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		r.logger.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error: scanning error")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return foundUser, nil
}

// FindUserByID looks up an account by its primary key. Unlike the email
// lookup it also returns suspended accounts; callers decide what an
// inactive account means for them.
func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	query, args, err := buildFindUserByIDQuery(r.db.placeholder, userID)
	if err != nil {
		r.logger.Err(err).Str("func", "*userRepository.FindUserByID").Msg("error: building select query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var foundUser models.User
	row := r.db.QueryRowContext(ctx, query, args...)

	if err := row.Err(); err != nil {
		r.logger.Err(err).Str("func", "*userRepository.FindUserByID").Msg("error: query failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if err := row.Scan(
		&foundUser.UserID,
		&foundUser.Name,
		&foundUser.Email,
		&foundUser.PasswordHash,
		&foundUser.Role,
		&foundUser.CompanyID,
		&foundUser.Status,
		&foundUser.CreatedAt,
		&foundUser.LastLogin,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		r.logger.Err(err).Str("func", "*userRepository.FindUserByID").Msg("error: scanning error")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return foundUser, nil
}

// TouchLastLogin records a successful login time on the user row. A
// transient failure (lock contention, dropped connection) is retried once.
func (r *userRepository) TouchLastLogin(ctx context.Context, userID int64, at time.Time) error {
	query, args, err := buildTouchLastLoginQuery(r.db.placeholder, userID, at)
	if err != nil {
		r.logger.Err(err).Str("func", "*userRepository.TouchLastLogin").Msg("error: building update query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	_, execErr := r.db.ExecContext(ctx, query, args...)
	if execErr != nil && r.db.errorClassificator.Classify(execErr) == Retryable {
		r.logger.Warn().Err(execErr).
			Str("func", "*userRepository.TouchLastLogin").
			Int64("user_id", userID).
			Msg("transient error, retrying once")
		_, execErr = r.db.ExecContext(ctx, query, args...)
	}
	if execErr != nil {
		r.logger.Err(execErr).Str("func", "*userRepository.TouchLastLogin").Msg("error: update failed")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
	}

	return nil
}
