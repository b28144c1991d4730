package outfit_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/closet-stylist/internal/domain/outfit"
	"github.com/yanqian/closet-stylist/internal/domain/profile"
	"github.com/yanqian/closet-stylist/internal/domain/stylist"
	"github.com/yanqian/closet-stylist/internal/domain/wardrobe"
	"github.com/yanqian/closet-stylist/internal/domain/weather"
	"github.com/yanqian/closet-stylist/internal/infra/imagestore"
	"github.com/yanqian/closet-stylist/internal/infra/outfitrepo"
	"github.com/yanqian/closet-stylist/internal/infra/wardroberepo"
	apperrors "github.com/yanqian/closet-stylist/pkg/errors"
	"github.com/yanqian/closet-stylist/pkg/validator"
)

type fixture struct {
	svc      outfit.Service
	wardrobe wardrobe.Service
	weather  *stubWeather
	profiles *stubProfiles
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	v := validator.New()
	items := wardroberepo.NewMemoryRepository()
	weatherStub := &stubWeather{}
	profiles := &stubProfiles{}
	recommender := stylist.NewRecommender(stylist.Config{}, stylist.SeededRandomSource(7))
	return &fixture{
		svc:      outfit.NewService(outfitrepo.NewMemoryRepository(), items, weatherStub, profiles, recommender, v, logger),
		wardrobe: wardrobe.NewService(items, imagestore.NewMemoryStore(), v, logger),
		weather:  weatherStub,
		profiles: profiles,
	}
}

func (f *fixture) add(t *testing.T, userID, name, category, color string, tags ...string) wardrobe.Item {
	t.Helper()
	item, err := f.wardrobe.Create(context.Background(), userID, wardrobe.CreateItemRequest{
		Name: name, Category: category, Color: color, Season: "summer", StyleTags: tags,
	})
	require.NoError(t, err)
	return item
}

func TestSuggestUsesExplicitTemperature(t *testing.T) {
	f := newFixture(t)
	shirt := f.add(t, "u1", "Linen T-Shirt", "tops", "white")
	jeans := f.add(t, "u1", "Blue Jeans", "bottoms", "blue")
	f.add(t, "u2", "Someone Else's Tee", "tops", "red")
	temp := 78.0

	res, err := f.svc.Suggest(context.Background(), "u1", outfit.SuggestRequest{Occasion: " Casual ", Temperature: &temp})
	require.NoError(t, err)
	require.Equal(t, "casual", res.Occasion)
	require.Equal(t, &stylist.WeatherSnapshot{Temperature: 78, Condition: "clear"}, res.Weather)
	require.Nil(t, res.Report)
	require.Empty(t, f.weather.calls)
	require.Len(t, res.Suggestions, 1)

	s := res.Suggestions[0]
	require.Equal(t, []string{shirt.ID, jeans.ID}, []string{s.Items[0].ID, s.Items[1].ID})
	require.Equal(t, "Linen T-Shirt", s.Items[0].Name)
	require.InDelta(t, 0.3*0.7+0.4*1+0.3*1, s.Score, 1e-9)
	require.Equal(t, "Perfect for casual • Suitable for 78°F", s.Reason)
}

func TestSuggestLooksUpProfileLocation(t *testing.T) {
	f := newFixture(t)
	f.add(t, "u1", "Tee", "tops", "black")
	f.add(t, "u1", "Shorts", "bottoms", "white")
	f.profiles.profile = profile.Profile{Location: "Lisbon"}
	f.weather.report = weather.Report{Location: "Lisbon, Portugal", Temperature: 72, Condition: "clear"}

	res, err := f.svc.Suggest(context.Background(), "u1", outfit.SuggestRequest{Occasion: "casual"})
	require.NoError(t, err)
	require.Equal(t, []string{"Lisbon"}, f.weather.calls)
	require.NotNil(t, res.Report)
	require.Equal(t, 72.0, res.Weather.Temperature)

	_, err = f.svc.Suggest(context.Background(), "u1", outfit.SuggestRequest{Occasion: "casual", Location: "Oslo"})
	require.NoError(t, err)
	require.Equal(t, []string{"Lisbon", "Oslo"}, f.weather.calls)
}

func TestSuggestWithoutWeatherWhenLookupFails(t *testing.T) {
	f := newFixture(t)
	f.add(t, "u1", "Tee", "tops", "black")
	f.add(t, "u1", "Shorts", "bottoms", "white")
	f.weather.err = apperrors.Wrap(apperrors.CodeWeatherUnavailable, "down", nil)

	res, err := f.svc.Suggest(context.Background(), "u1", outfit.SuggestRequest{Occasion: "casual"})
	require.NoError(t, err)
	require.Nil(t, res.Weather)
	require.Len(t, res.Suggestions, 1)
	require.InDelta(t, 0.3*0.9+0.3*0.8, res.Suggestions[0].Score, 1e-9)
}

func TestSuggestIgnoreWeather(t *testing.T) {
	f := newFixture(t)
	res, err := f.svc.Suggest(context.Background(), "u1", outfit.SuggestRequest{Occasion: "date", IgnoreWeather: true})
	require.NoError(t, err)
	require.Empty(t, f.weather.calls)
	require.NotNil(t, res.Suggestions)
	require.Empty(t, res.Suggestions)
}

func TestSuggestRequiresOccasion(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.Suggest(context.Background(), "u1", outfit.SuggestRequest{Occasion: "  "})
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidInput))
}

func TestSaveAndList(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	shirt := f.add(t, "u1", "Shirt", "tops", "white")
	jeans := f.add(t, "u1", "Jeans", "bottoms", "blue")

	saved, err := f.svc.Save(ctx, "u1", outfit.SaveRequest{
		Occasion: "Formal",
		ItemIDs:  []string{shirt.ID, jeans.ID},
		Score:    0.82,
		Reason:   "Great color combination",
	})
	require.NoError(t, err)
	require.Equal(t, "Formal Outfit", saved.Name)
	require.Equal(t, "formal", saved.Occasion)
	require.Equal(t, stylist.SeasonSummer, saved.Season)
	require.False(t, saved.IsFavorite)

	views, err := f.svc.List(ctx, "u1", outfit.ListFilter{Occasion: "formal"})
	require.NoError(t, err)
	require.Len(t, views, 1)
	require.Len(t, views[0].Details, 2)

	require.NoError(t, f.wardrobe.Delete(ctx, "u1", jeans.ID))
	views, err = f.svc.List(ctx, "u1", outfit.ListFilter{})
	require.NoError(t, err)
	require.Len(t, views[0].Details, 1)

	views, err = f.svc.List(ctx, "u1", outfit.ListFilter{Occasion: "casual"})
	require.NoError(t, err)
	require.Empty(t, views)
}

func TestSaveValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	a := f.add(t, "u1", "Shirt", "tops", "white")
	b := f.add(t, "u1", "Jeans", "bottoms", "blue")
	foreign := f.add(t, "u2", "Skirt", "bottoms", "black")

	cases := map[string]outfit.SaveRequest{
		"one item":      {Occasion: "casual", ItemIDs: []string{a.ID}},
		"five items":    {Occasion: "casual", ItemIDs: []string{"1", "2", "3", "4", "5"}},
		"score too big": {Occasion: "casual", ItemIDs: []string{a.ID, b.ID}, Score: 1.2},
		"no occasion":   {ItemIDs: []string{a.ID, b.ID}},
		"duplicate":     {Occasion: "casual", ItemIDs: []string{a.ID, a.ID}},
		"foreign item":  {Occasion: "casual", ItemIDs: []string{a.ID, foreign.ID}},
		"unknown item":  {Occasion: "casual", ItemIDs: []string{a.ID, "missing"}},
	}
	for name, req := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := f.svc.Save(ctx, "u1", req)
			require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidInput), "got %v", err)
		})
	}
}

func TestFavoriteShareAndDelete(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	a := f.add(t, "u1", "Shirt", "tops", "white")
	b := f.add(t, "u1", "Jeans", "bottoms", "blue")
	saved, err := f.svc.Save(ctx, "u1", outfit.SaveRequest{Name: "Weekend", Occasion: "casual", ItemIDs: []string{a.ID, b.ID}, Score: 0.7})
	require.NoError(t, err)

	fav, err := f.svc.SetFavorite(ctx, "u1", saved.ID, true)
	require.NoError(t, err)
	require.True(t, fav.IsFavorite)
	_, err = f.svc.SetFavorite(ctx, "u2", saved.ID, true)
	require.True(t, apperrors.IsCode(err, apperrors.CodeNotFound))

	_, err = f.svc.Share(ctx, "u2", saved.ID)
	require.True(t, apperrors.IsCode(err, apperrors.CodeNotFound))
	link, err := f.svc.Share(ctx, "u1", saved.ID)
	require.NoError(t, err)
	require.NotEmpty(t, link.Token)
	require.Equal(t, "/api/v1/shared/"+link.Token, link.Path)

	shared, err := f.svc.Shared(ctx, link.Token)
	require.NoError(t, err)
	require.Equal(t, "Weekend", shared.Name)
	require.Len(t, shared.Details, 2)

	require.NoError(t, f.svc.Delete(ctx, "u1", saved.ID))
	_, err = f.svc.Shared(ctx, link.Token)
	require.True(t, apperrors.IsCode(err, apperrors.CodeNotFound))
	err = f.svc.Delete(ctx, "u1", saved.ID)
	require.True(t, apperrors.IsCode(err, apperrors.CodeNotFound))
}

type stubWeather struct {
	report weather.Report
	err    error
	calls  []string
}

func (s *stubWeather) Lookup(_ context.Context, location string) (weather.Report, error) {
	s.calls = append(s.calls, location)
	return s.report, s.err
}

type stubProfiles struct {
	profile profile.Profile
	err     error
}

func (s *stubProfiles) Get(_ context.Context, userID string) (profile.Profile, error) {
	if s.err != nil {
		return profile.Profile{}, s.err
	}
	p := s.profile
	p.UserID = userID
	return p, nil
}
