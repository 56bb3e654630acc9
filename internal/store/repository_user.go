package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-user-registry/internal/logger"
	"github.com/MKhiriev/go-user-registry/models"
)

const usersTable = "users"

// userColumns is the canonical column order used by every users query.
var userColumns = []string{"id", "name", "address", "phone", "national_id"}

// userRepository is the SQL-backed implementation of [UserRepository].
// It works against either supported driver through the DB's statement
// builder, which carries the correct placeholder format.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns the fully populated
// [models.User] with the store-assigned ID.
//
// The INSERT carries a RETURNING clause so the caller receives the canonical
// database representation of the newly created record.
//
// Error handling:
//   - unique-constraint violation on national_id → [ErrNationalIDExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
//   - Scan failure → wrapped [ErrScanningRow].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Insert(usersTable).
		Columns("name", "address", "phone", "national_id").
		Values(user.Name, user.Address, user.Phone, user.NationalID).
		Suffix("RETURNING id, name, address, phone, national_id").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: building insert query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var created models.User
	row := r.db.QueryRowContext(ctx, query, args...)
	if err = row.Scan(&created.ID, &created.Name, &created.Address, &created.Phone, &created.NationalID); err != nil {
		if isUniqueViolation(err) {
			log.Debug().Str("national_id", user.NationalID).Msg("national_id already exists")
			return models.User{}, ErrNationalIDExists
		}
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: insert failed")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// GetUserByID retrieves a user record by primary key.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrUserNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) GetUserByID(ctx context.Context, id int64) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select(userColumns...).
		From(usersTable).
		Where("id = ?", id).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.GetUserByID").Msg("error: building select query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var found models.User
	row := r.db.QueryRowContext(ctx, query, args...)
	if err = row.Scan(&found.ID, &found.Name, &found.Address, &found.Phone, &found.NationalID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("func", "*userRepository.GetUserByID").Msg("error: scanning error")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// FindUserByNationalID retrieves a user record whose national_id matches the
// one provided.
//
// Error handling mirrors [userRepository.GetUserByID].
func (r *userRepository) FindUserByNationalID(ctx context.Context, nationalID string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select(userColumns...).
		From(usersTable).
		Where("national_id = ?", nationalID).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByNationalID").Msg("error: building select query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var found models.User
	row := r.db.QueryRowContext(ctx, query, args...)
	if err = row.Scan(&found.ID, &found.Name, &found.Address, &found.Phone, &found.NationalID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("func", "*userRepository.FindUserByNationalID").Msg("error: scanning error")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// ListUserIDs returns every stored primary key ordered ascending. An empty
// table yields an empty, non-nil slice.
func (r *userRepository) ListUserIDs(ctx context.Context) ([]int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select("id").
		From(usersTable).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUserIDs").Msg("error: building select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUserIDs").Msg("error: executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err = rows.Scan(&id); err != nil {
			log.Err(err).Str("func", "*userRepository.ListUserIDs").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		ids = append(ids, id)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return ids, nil
}
