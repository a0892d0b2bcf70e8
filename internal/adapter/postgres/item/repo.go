// Package item implements the gallery item repository using PostgreSQL.
//
// Insertion recency (the basis of the per-author cap) is tracked by a
// bigserial seq column, not by the item timestamp.
package item

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/artfox/nanogallery-backend/internal/adapter/postgres"
	"github.com/artfox/nanogallery-backend/internal/domain"
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const table = "gallery_items"

var columns = []string{
	"id", "title", "image_urls", "liked_by", "views", "date", "ts",
	"prompt", "author_id", "author_name", "is_public",
}

// Repo provides gallery item persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new item repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Insert stores a new item.
func (r *Repo) Insert(ctx context.Context, item *domain.GalleryItem) error {
	query, args, err := qb.Insert(table).
		Columns(columns...).
		Values(item.ID, item.Title, item.ImageURLs, item.LikedBy, item.Views,
			item.Date, item.Timestamp, item.Prompt, item.AuthorID,
			item.AuthorName, item.IsPublic).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	if _, err := q.Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "item", item.ID)
	}
	return nil
}

// GetByID returns an item by primary key.
func (r *Repo) GetByID(ctx context.Context, id string) (*domain.GalleryItem, error) {
	query, args, err := qb.Select(columns...).From(table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	item, err := scanItem(q.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "item", id)
	}
	return item, nil
}

// Update rewrites the mutable fields (likes, views, visibility). The seq
// column is untouched, so insertion recency is preserved.
func (r *Repo) Update(ctx context.Context, item *domain.GalleryItem) error {
	query, args, err := qb.Update(table).
		Set("liked_by", item.LikedBy).
		Set("views", item.Views).
		Set("is_public", item.IsPublic).
		Where(sq.Eq{"id": item.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "item", item.ID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("item %s: %w", item.ID, domain.ErrNotFound)
	}
	return nil
}

// Delete removes an item.
func (r *Repo) Delete(ctx context.Context, id string) error {
	query, args, err := qb.Delete(table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "item", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("item %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ListPublic returns all public items in insertion order.
func (r *Repo) ListPublic(ctx context.Context) ([]domain.GalleryItem, error) {
	return r.list(ctx, sq.Eq{"is_public": true}, "all")
}

// ListByAuthor returns the author's items, least recently inserted first.
func (r *Repo) ListByAuthor(ctx context.Context, authorID string) ([]domain.GalleryItem, error) {
	return r.list(ctx, sq.Eq{"author_id": authorID}, authorID)
}

// CountByAuthor returns how many items the author currently holds.
func (r *Repo) CountByAuthor(ctx context.Context, authorID string) (int, error) {
	query, args, err := qb.Select("count(*)").From(table).
		Where(sq.Eq{"author_id": authorID}).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	var n int
	if err := q.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, postgres.MapError(err, "item", authorID)
	}
	return n, nil
}

func (r *Repo) list(ctx context.Context, cond sq.Eq, key string) ([]domain.GalleryItem, error) {
	query, args, err := qb.Select(columns...).From(table).
		Where(cond).OrderBy("seq ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "items", key)
	}
	defer rows.Close()

	var items []domain.GalleryItem
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, postgres.MapError(err, "items", key)
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "items", key)
	}
	return items, nil
}

func scanItem(row pgx.Row) (*domain.GalleryItem, error) {
	var item domain.GalleryItem
	err := row.Scan(&item.ID, &item.Title, &item.ImageURLs, &item.LikedBy,
		&item.Views, &item.Date, &item.Timestamp, &item.Prompt,
		&item.AuthorID, &item.AuthorName, &item.IsPublic)
	if err != nil {
		return nil, err
	}
	if item.LikedBy == nil {
		item.LikedBy = []string{}
	}
	return &item, nil
}
