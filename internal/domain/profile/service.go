package profile

import (
	"context"
	"log/slog"
	"strings"
	"time"

	apperrors "github.com/yanqian/closet-stylist/pkg/errors"
	"github.com/yanqian/closet-stylist/pkg/validator"
)

// Service reads and updates user profiles.
type Service interface {
	Get(ctx context.Context, userID string) (Profile, error)
	Update(ctx context.Context, userID string, req UpdateRequest) (Profile, error)
}

type service struct {
	repo      Repository
	validator *validator.Validator
	logger    *slog.Logger
	now       func() time.Time
}

// NewService constructs the profile service.
func NewService(repo Repository, v *validator.Validator, logger *slog.Logger) Service {
	return &service{
		repo:      repo,
		validator: v,
		logger:    logger.With("component", "profile.service"),
		now:       time.Now,
	}
}

// Get returns the stored profile, or an empty one for users who never saved it.
func (s *service) Get(ctx context.Context, userID string) (Profile, error) {
	p, found, err := s.repo.Get(ctx, userID)
	if err != nil {
		return Profile{}, apperrors.Wrap(apperrors.CodeStorage, "failed to load profile", err)
	}
	if !found {
		return Profile{UserID: userID, StylePreferences: []string{}}, nil
	}
	return p, nil
}

func (s *service) Update(ctx context.Context, userID string, req UpdateRequest) (Profile, error) {
	req.FullName = strings.TrimSpace(req.FullName)
	req.Location = strings.TrimSpace(req.Location)
	req.StylePreferences = normalizePreferences(req.StylePreferences)
	if err := s.validator.Struct(req); err != nil {
		return Profile{}, apperrors.Wrap(apperrors.CodeInvalidInput, "invalid profile", err)
	}

	saved, err := s.repo.Upsert(ctx, Profile{
		UserID:           userID,
		FullName:         req.FullName,
		Location:         req.Location,
		StylePreferences: req.StylePreferences,
		UpdatedAt:        s.now().UTC(),
	})
	if err != nil {
		return Profile{}, apperrors.Wrap(apperrors.CodeStorage, "failed to save profile", err)
	}
	s.logger.Info("profile updated", "user_id", userID, "preferences", len(saved.StylePreferences))
	return saved, nil
}

func normalizePreferences(prefs []string) []string {
	out := make([]string, 0, len(prefs))
	seen := make(map[string]struct{}, len(prefs))
	for _, p := range prefs {
		p = strings.ToLower(strings.TrimSpace(p))
		if p == "" {
			continue
		}
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}
