// Package user implements the user registry repository using PostgreSQL.
package user

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/artfox/nanogallery-backend/internal/adapter/postgres"
	"github.com/artfox/nanogallery-backend/internal/domain"
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const table = "users"

var columns = []string{"id", "username", "password", "avatar"}

// Repo provides user registry persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a new registry entry. Username uniqueness is enforced by
// a DB constraint and surfaces as domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, u *domain.RegisteredUser) error {
	query, args, err := qb.Insert(table).
		Columns(columns...).
		Values(u.ID, u.Username, u.Password, u.Avatar).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	if _, err := q.Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "user", u.Username)
	}
	return nil
}

// GetByUsername returns the entry for an exact, case-sensitive username match.
func (r *Repo) GetByUsername(ctx context.Context, username string) (*domain.RegisteredUser, error) {
	return r.getBy(ctx, sq.Eq{"username": username}, username)
}

// GetByID returns the entry for a user ID.
func (r *Repo) GetByID(ctx context.Context, id string) (*domain.RegisteredUser, error) {
	return r.getBy(ctx, sq.Eq{"id": id}, id)
}

func (r *Repo) getBy(ctx context.Context, cond sq.Eq, key string) (*domain.RegisteredUser, error) {
	query, args, err := qb.Select(columns...).From(table).Where(cond).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	var u domain.RegisteredUser
	row := q.QueryRow(ctx, query, args...)
	if err := row.Scan(&u.ID, &u.Username, &u.Password, &u.Avatar); err != nil {
		return nil, postgres.MapError(err, "user", key)
	}
	return &u, nil
}
