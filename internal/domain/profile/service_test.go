package profile_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/closet-stylist/internal/domain/profile"
	"github.com/yanqian/closet-stylist/internal/infra/profilerepo"
	apperrors "github.com/yanqian/closet-stylist/pkg/errors"
	"github.com/yanqian/closet-stylist/pkg/validator"
)

func newService(repo profile.Repository) profile.Service {
	return profile.NewService(repo, validator.New(), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestGetReturnsEmptyProfile(t *testing.T) {
	svc := newService(profilerepo.NewMemoryRepository())

	p, err := svc.Get(context.Background(), "u1")
	require.NoError(t, err)
	require.Equal(t, "u1", p.UserID)
	require.Empty(t, p.Location)
	require.NotNil(t, p.StylePreferences)
}

func TestUpdateNormalizesAndPersists(t *testing.T) {
	svc := newService(profilerepo.NewMemoryRepository())
	ctx := context.Background()

	saved, err := svc.Update(ctx, "u1", profile.UpdateRequest{
		FullName:         " Ada ",
		Location:         " Seattle ",
		StylePreferences: []string{"Classic", "classic", "sporty"},
	})
	require.NoError(t, err)
	require.Equal(t, "Ada", saved.FullName)
	require.Equal(t, []string{"classic", "sporty"}, saved.StylePreferences)
	require.False(t, saved.UpdatedAt.IsZero())

	got, err := svc.Get(ctx, "u1")
	require.NoError(t, err)
	require.Equal(t, "Seattle", got.Location)
}

func TestUpdateRejectsUnknownPreference(t *testing.T) {
	svc := newService(profilerepo.NewMemoryRepository())

	_, err := svc.Update(context.Background(), "u1", profile.UpdateRequest{StylePreferences: []string{"goth"}})
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidInput))
}

func TestStorageFailuresAreWrapped(t *testing.T) {
	svc := newService(failingRepo{})

	_, err := svc.Get(context.Background(), "u1")
	require.True(t, apperrors.IsCode(err, apperrors.CodeStorage))
	_, err = svc.Update(context.Background(), "u1", profile.UpdateRequest{})
	require.True(t, apperrors.IsCode(err, apperrors.CodeStorage))
}

type failingRepo struct{}

func (failingRepo) Get(context.Context, string) (profile.Profile, bool, error) {
	return profile.Profile{}, false, errors.New("db down")
}

func (failingRepo) Upsert(context.Context, profile.Profile) (profile.Profile, error) {
	return profile.Profile{}, errors.New("db down")
}
