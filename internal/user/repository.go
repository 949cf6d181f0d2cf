package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound is returned when no user exists for the requested identifier.
var ErrNotFound = errors.New("user not found")

// Repository persists users keyed by their Telegram identity.
type Repository interface {
	// GetOrCreate inserts a user for profile.TelegramID if none exists,
	// otherwise reconciles the stored record with the supplied profile.
	// The boolean reports whether a new record was created. The operation
	// is atomic per Telegram identity.
	GetOrCreate(ctx context.Context, profile Profile) (User, bool, error)
	// GetByID fetches a user by internal identifier.
	GetByID(ctx context.Context, id int64) (User, error)
}

// PostgresRepository implements Repository using PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a Postgres-backed user repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// GetOrCreate upserts in a single statement so concurrent first-time logins
// for one Telegram identity contend on the unique constraint instead of
// racing a check-then-insert. COALESCE keeps stored values when the incoming
// field is NULL; xmax = 0 distinguishes a fresh insert from an update.
func (r *PostgresRepository) GetOrCreate(ctx context.Context, profile Profile) (User, bool, error) {
	row := r.db.QueryRow(ctx, `INSERT INTO users (telegram_id, username, first_name, last_name)
        VALUES ($1, $2, $3, $4)
        ON CONFLICT (telegram_id) DO UPDATE SET
            username   = COALESCE(EXCLUDED.username, users.username),
            first_name = COALESCE(EXCLUDED.first_name, users.first_name),
            last_name  = COALESCE(EXCLUDED.last_name, users.last_name),
            updated_at = now()
        RETURNING id, telegram_id, username, first_name, last_name, created_at, updated_at, (xmax = 0)`,
		profile.TelegramID, profile.Username, profile.FirstName, profile.LastName)

	var (
		u       User
		created bool
	)
	if err := row.Scan(&u.ID, &u.TelegramID, &u.Username, &u.FirstName, &u.LastName, &u.CreatedAt, &u.UpdatedAt, &created); err != nil {
		return User{}, false, fmt.Errorf("upsert user: %w", err)
	}
	u.CreatedAt = u.CreatedAt.UTC()
	u.UpdatedAt = u.UpdatedAt.UTC()
	return u, created, nil
}

// GetByID fetches a user by internal identifier.
func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (User, error) {
	row := r.db.QueryRow(ctx, `SELECT id, telegram_id, username, first_name, last_name, created_at, updated_at
        FROM users WHERE id = $1`, id)

	var u User
	if err := row.Scan(&u.ID, &u.TelegramID, &u.Username, &u.FirstName, &u.LastName, &u.CreatedAt, &u.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, fmt.Errorf("select user: %w", err)
	}
	u.CreatedAt = u.CreatedAt.UTC()
	u.UpdatedAt = u.UpdatedAt.UTC()
	return u, nil
}
