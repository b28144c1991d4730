package profilerepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yanqian/closet-stylist/internal/domain/profile"
)

// PostgresRepository stores profiles in the profiles table.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository builds the repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

func (r *PostgresRepository) Get(ctx context.Context, userID string) (profile.Profile, bool, error) {
	var p profile.Profile
	err := r.pool.QueryRow(ctx, `
		SELECT user_id, full_name, location, style_preferences, updated_at
		FROM profiles
		WHERE user_id = $1
	`, userID).Scan(&p.UserID, &p.FullName, &p.Location, &p.StylePreferences, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return profile.Profile{}, false, nil
		}
		return profile.Profile{}, false, err
	}
	return p, true, nil
}

func (r *PostgresRepository) Upsert(ctx context.Context, p profile.Profile) (profile.Profile, error) {
	prefs := p.StylePreferences
	if prefs == nil {
		prefs = []string{}
	}
	var out profile.Profile
	err := r.pool.QueryRow(ctx, `
		INSERT INTO profiles (user_id, full_name, location, style_preferences, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id) DO UPDATE
		SET full_name = EXCLUDED.full_name,
		    location = EXCLUDED.location,
		    style_preferences = EXCLUDED.style_preferences,
		    updated_at = EXCLUDED.updated_at
		RETURNING user_id, full_name, location, style_preferences, updated_at
	`, p.UserID, p.FullName, p.Location, prefs, p.UpdatedAt).Scan(&out.UserID, &out.FullName, &out.Location, &out.StylePreferences, &out.UpdatedAt)
	if err != nil {
		return profile.Profile{}, err
	}
	return out, nil
}

var _ profile.Repository = (*PostgresRepository)(nil)
