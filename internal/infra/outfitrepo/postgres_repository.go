package outfitrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yanqian/closet-stylist/internal/domain/outfit"
	"github.com/yanqian/closet-stylist/internal/domain/stylist"
)

const outfitColumns = `id, user_id, name, occasion, season, item_ids, ai_score, reason, is_favorite, created_at`

// PostgresRepository persists outfits and shares. shared_outfits.outfit_id
// cascades on delete.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository builds the repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

func (r *PostgresRepository) Create(ctx context.Context, o outfit.Outfit) (outfit.Outfit, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO outfits (id, user_id, name, occasion, season, item_ids, ai_score, reason, is_favorite, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING `+outfitColumns,
		o.ID, o.UserID, o.Name, o.Occasion, string(o.Season), o.ItemIDs, o.Score, o.Reason, o.IsFavorite, o.CreatedAt)
	return scanOutfit(row)
}

func (r *PostgresRepository) List(ctx context.Context, userID string, filter outfit.ListFilter) ([]outfit.Outfit, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+outfitColumns+`
		FROM outfits
		WHERE user_id = $1 AND ($2 = '' OR occasion = $2)
		ORDER BY created_at DESC, id DESC
	`, userID, filter.Occasion)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]outfit.Outfit, 0)
	for rows.Next() {
		o, err := scanOutfit(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) Get(ctx context.Context, userID, id string) (outfit.Outfit, bool, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+outfitColumns+`
		FROM outfits
		WHERE user_id = $1 AND id = $2
	`, userID, id)
	return found(scanOutfit(row))
}

func (r *PostgresRepository) SetFavorite(ctx context.Context, userID, id string, favorite bool) (outfit.Outfit, bool, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE outfits
		SET is_favorite = $3
		WHERE user_id = $1 AND id = $2
		RETURNING `+outfitColumns, userID, id, favorite)
	return found(scanOutfit(row))
}

func (r *PostgresRepository) Delete(ctx context.Context, userID, id string) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM outfits WHERE user_id = $1 AND id = $2`, userID, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *PostgresRepository) CreateShare(ctx context.Context, share outfit.Share) (outfit.Share, error) {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO shared_outfits (share_token, outfit_id, user_id, created_at)
		VALUES ($1, $2, $3, $4)
	`, share.Token, share.OutfitID, share.UserID, share.CreatedAt)
	if err != nil {
		return outfit.Share{}, err
	}
	return share, nil
}

func (r *PostgresRepository) SharedOutfit(ctx context.Context, token string) (outfit.Outfit, bool, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT o.id, o.user_id, o.name, o.occasion, o.season, o.item_ids, o.ai_score, o.reason, o.is_favorite, o.created_at
		FROM shared_outfits s
		JOIN outfits o ON o.id = s.outfit_id
		WHERE s.share_token = $1
	`, token)
	return found(scanOutfit(row))
}

func scanOutfit(row pgx.Row) (outfit.Outfit, error) {
	var (
		o      outfit.Outfit
		season string
	)
	if err := row.Scan(&o.ID, &o.UserID, &o.Name, &o.Occasion, &season, &o.ItemIDs, &o.Score, &o.Reason, &o.IsFavorite, &o.CreatedAt); err != nil {
		return outfit.Outfit{}, err
	}
	o.Season = stylist.Season(season)
	o.CreatedAt = o.CreatedAt.UTC()
	return o, nil
}

func found(o outfit.Outfit, err error) (outfit.Outfit, bool, error) {
	if errors.Is(err, pgx.ErrNoRows) {
		return outfit.Outfit{}, false, nil
	}
	if err != nil {
		return outfit.Outfit{}, false, err
	}
	return o, true, nil
}

var _ outfit.Repository = (*PostgresRepository)(nil)
