package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/pablozoani/gl-exercise/internal/auth/domain"
	autherror "github.com/pablozoani/gl-exercise/internal/errors"
)

// PgxIface is the slice of pgxpool.Pool the repository needs; pgxmock
// provides a compatible pool for tests.
type PgxIface interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PostgresRepository struct {
	db PgxIface
}

func NewPostgresUserRepository(db PgxIface) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// GetByEmail loads a user and, eagerly, its phones. Returns (nil, nil) when
// no user has the given email.
func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
		SELECT id, email, password_hash, name, created_at, last_login, is_active
		FROM users
		WHERE email = $1
		LIMIT 1;
	`
	row := r.db.QueryRow(ctx, query, email)

	var user domain.User
	err := row.Scan(&user.ID, &user.Email, &user.PasswordHash, &user.Name,
		&user.CreatedAt, &user.LastLogin, &user.IsActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	phones, err := r.phonesByUserID(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	user.Phones = phones

	return &user, nil
}

func (r *PostgresRepository) phonesByUserID(ctx context.Context, userID string) ([]domain.Phone, error) {
	query := `
		SELECT id, user_id, number, city_code, country_code
		FROM phones
		WHERE user_id = $1
		ORDER BY number;
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get phones: %w", err)
	}
	defer rows.Close()

	var phones []domain.Phone
	for rows.Next() {
		var p domain.Phone
		if err := rows.Scan(&p.ID, &p.UserID, &p.Number, &p.CityCode, &p.CountryCode); err != nil {
			return nil, fmt.Errorf("failed to scan phone: %w", err)
		}
		phones = append(phones, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read phones: %w", err)
	}

	return phones, nil
}

// Create inserts the user and its phones in one transaction. A rejected
// write on the email uniqueness constraint comes back as
// ErrEmailAlreadyInUse; everything else propagates unchanged.
func (r *PostgresRepository) Create(ctx context.Context, user *domain.User) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
        INSERT INTO users (id, email, password_hash, name, created_at, last_login, is_active)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
    `, user.ID, user.Email, user.PasswordHash, user.Name, user.CreatedAt, user.LastLogin, user.IsActive)
	if err != nil {
		return translateConstraintError(err)
	}

	for i := range user.Phones {
		p := &user.Phones[i]
		_, err = tx.Exec(ctx, `
            INSERT INTO phones (id, user_id, number, city_code, country_code)
            VALUES ($1, $2, $3, $4, $5)
        `, p.ID, p.UserID, p.Number, p.CityCode, p.CountryCode)
		if err != nil {
			return translateConstraintError(err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return translateConstraintError(err)
	}

	return nil
}

func (r *PostgresRepository) UpdateLastLogin(ctx context.Context, userID string, lastLogin time.Time) error {
	_, err := r.db.Exec(ctx, `
		UPDATE users SET last_login = $2 WHERE id = $1
	`, userID, lastLogin)
	if err != nil {
		return fmt.Errorf("failed to update last login: %w", err)
	}

	return nil
}

// translateConstraintError maps a unique violation on the user email
// constraint to the typed conflict error. Postgres reports the violated
// constraint by name, so no message inspection is needed.
func translateConstraintError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) &&
		pgErr.Code == pgerrcode.UniqueViolation &&
		pgErr.ConstraintName == "unique_user_email" {
		return autherror.ErrEmailAlreadyInUse
	}

	return err
}
