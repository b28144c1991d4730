package wardroberepo

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yanqian/closet-stylist/internal/domain/stylist"
	"github.com/yanqian/closet-stylist/internal/domain/wardrobe"
)

const itemColumns = `id, user_id, name, category, color, season, style_tags, image_url, image_key, image_type, created_at`

// PostgresRepository persists wardrobe items in Postgres.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// Create inserts a new item row.
func (r *PostgresRepository) Create(ctx context.Context, item wardrobe.Item) (wardrobe.Item, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO wardrobe_items (id, user_id, name, category, color, season, style_tags, image_url, image_key, image_type, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING `+itemColumns,
		item.ID, item.UserID, item.Name, string(item.Category), item.Color, string(item.Season),
		nonNil(item.StyleTags), item.ImageURL, item.ImageKey, item.ImageType, item.CreatedAt)
	return scanItem(row)
}

// List returns the user's items, newest first.
func (r *PostgresRepository) List(ctx context.Context, userID string, filter wardrobe.ItemFilter) ([]wardrobe.Item, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+itemColumns+`
		FROM wardrobe_items
		WHERE user_id = $1 AND ($2 = '' OR category = $2)
		ORDER BY created_at DESC, id DESC
	`, userID, string(filter.Category))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := make([]wardrobe.Item, 0)
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// Get fetches one item owned by the user.
func (r *PostgresRepository) Get(ctx context.Context, userID, id string) (wardrobe.Item, bool, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+itemColumns+`
		FROM wardrobe_items
		WHERE user_id = $1 AND id = $2
		LIMIT 1
	`, userID, id)
	if err != nil {
		return wardrobe.Item{}, false, err
	}
	defer rows.Close()
	if !rows.Next() {
		return wardrobe.Item{}, false, rows.Err()
	}
	item, err := scanItem(rows)
	if err != nil {
		return wardrobe.Item{}, false, err
	}
	return item, true, rows.Err()
}

// GetMany fetches the user's items in the order of ids.
func (r *PostgresRepository) GetMany(ctx context.Context, userID string, ids []string) ([]wardrobe.Item, error) {
	if len(ids) == 0 {
		return []wardrobe.Item{}, nil
	}
	rows, err := r.pool.Query(ctx, `
		SELECT `+itemColumns+`
		FROM wardrobe_items
		WHERE user_id = $1 AND id = ANY($2)
	`, userID, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	byID := make(map[string]wardrobe.Item, len(ids))
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		byID[item.ID] = item
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	out := make([]wardrobe.Item, 0, len(ids))
	for _, id := range ids {
		if item, ok := byID[id]; ok {
			out = append(out, item)
		}
	}
	return out, nil
}

// SetImage records the stored photo for an item.
func (r *PostgresRepository) SetImage(ctx context.Context, userID, id, key, url, mimeType string) (wardrobe.Item, bool, error) {
	rows, err := r.pool.Query(ctx, `
		UPDATE wardrobe_items
		SET image_key = $3, image_url = $4, image_type = $5
		WHERE user_id = $1 AND id = $2
		RETURNING `+itemColumns, userID, id, key, url, mimeType)
	if err != nil {
		return wardrobe.Item{}, false, err
	}
	return firstItem(rows)
}

// Delete removes the item and returns the deleted row.
func (r *PostgresRepository) Delete(ctx context.Context, userID, id string) (wardrobe.Item, bool, error) {
	rows, err := r.pool.Query(ctx, `
		DELETE FROM wardrobe_items
		WHERE user_id = $1 AND id = $2
		RETURNING `+itemColumns, userID, id)
	if err != nil {
		return wardrobe.Item{}, false, err
	}
	return firstItem(rows)
}

type rowScanner interface {
	Scan(dest ...any) error
}

type itemRows interface {
	rowScanner
	Next() bool
	Err() error
	Close()
}

func firstItem(rows itemRows) (wardrobe.Item, bool, error) {
	defer rows.Close()
	if !rows.Next() {
		return wardrobe.Item{}, false, rows.Err()
	}
	item, err := scanItem(rows)
	if err != nil {
		return wardrobe.Item{}, false, err
	}
	return item, true, rows.Err()
}

func scanItem(row rowScanner) (wardrobe.Item, error) {
	var (
		item     wardrobe.Item
		category string
		season   string
		created  time.Time
	)
	if err := row.Scan(&item.ID, &item.UserID, &item.Name, &category, &item.Color, &season,
		&item.StyleTags, &item.ImageURL, &item.ImageKey, &item.ImageType, &created); err != nil {
		return wardrobe.Item{}, err
	}
	item.Category = stylist.Category(category)
	item.Season = stylist.Season(season)
	item.CreatedAt = created.UTC()
	return item, nil
}

func nonNil(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}

var _ wardrobe.Repository = (*PostgresRepository)(nil)
