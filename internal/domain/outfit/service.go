package outfit

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/yanqian/closet-stylist/internal/domain/stylist"
	"github.com/yanqian/closet-stylist/internal/domain/wardrobe"
	"github.com/yanqian/closet-stylist/internal/domain/weather"
	apperrors "github.com/yanqian/closet-stylist/pkg/errors"
	"github.com/yanqian/closet-stylist/pkg/metrics"
	"github.com/yanqian/closet-stylist/pkg/validator"
)

const sharedPathPrefix = "/api/v1/shared/"

// Service exposes outfit suggestion and catalog use cases.
type Service interface {
	Suggest(ctx context.Context, userID string, req SuggestRequest) (SuggestResult, error)
	Save(ctx context.Context, userID string, req SaveRequest) (Outfit, error)
	List(ctx context.Context, userID string, filter ListFilter) ([]View, error)
	SetFavorite(ctx context.Context, userID, id string, favorite bool) (Outfit, error)
	Delete(ctx context.Context, userID, id string) error
	Share(ctx context.Context, userID, id string) (ShareLink, error)
	Shared(ctx context.Context, token string) (View, error)
}

type service struct {
	repo        Repository
	items       ItemReader
	weather     WeatherLookup
	profiles    ProfileReader
	recommender *stylist.Recommender
	validator   *validator.Validator
	logger      *slog.Logger
	now         func() time.Time
	newID       func() string
}

// NewService wires the outfit domain.
func NewService(
	repo Repository,
	items ItemReader,
	weatherLookup WeatherLookup,
	profiles ProfileReader,
	recommender *stylist.Recommender,
	v *validator.Validator,
	logger *slog.Logger,
) Service {
	return &service{
		repo:        repo,
		items:       items,
		weather:     weatherLookup,
		profiles:    profiles,
		recommender: recommender,
		validator:   v,
		logger:      logger.With("component", "outfit.service"),
		now:         time.Now,
		newID:       uuid.NewString,
	}
}

func (s *service) Suggest(ctx context.Context, userID string, req SuggestRequest) (SuggestResult, error) {
	req.Occasion = strings.ToLower(strings.TrimSpace(req.Occasion))
	req.Location = strings.TrimSpace(req.Location)
	req.Condition = strings.ToLower(strings.TrimSpace(req.Condition))
	if err := s.validator.Struct(req); err != nil {
		return SuggestResult{}, apperrors.Wrap(apperrors.CodeInvalidInput, "invalid suggestion request", err)
	}

	var (
		items  []wardrobe.Item
		report *weather.Report
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		loaded, err := s.items.List(gctx, userID, wardrobe.ItemFilter{})
		if err != nil {
			return apperrors.Wrap(apperrors.CodeStorage, "failed to load wardrobe", err)
		}
		items = loaded
		return nil
	})
	if req.Temperature == nil && !req.IgnoreWeather {
		g.Go(func() error {
			report = s.lookupWeather(gctx, userID, req.Location)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return SuggestResult{}, err
	}

	result := SuggestResult{Occasion: req.Occasion, Report: report}
	switch {
	case req.Temperature != nil:
		condition := req.Condition
		if condition == "" {
			condition = weather.ConditionClear
		}
		result.Weather = &stylist.WeatherSnapshot{Temperature: *req.Temperature, Condition: condition}
	case report != nil:
		snap := report.Snapshot()
		result.Weather = &snap
	}

	// Reverse into oldest-first so enumeration follows catalog order.
	styled := make([]stylist.WardrobeItem, 0, len(items))
	byID := make(map[string]wardrobe.Item, len(items))
	for i := len(items) - 1; i >= 0; i-- {
		styled = append(styled, items[i].Styled())
		byID[items[i].ID] = items[i]
	}

	candidates := s.recommender.Generate(styled, req.Occasion, result.Weather)
	result.Suggestions = make([]Suggestion, 0, len(candidates))
	for _, c := range candidates {
		full := make([]wardrobe.Item, 0, len(c.Items))
		for _, id := range c.ItemIDs() {
			full = append(full, byID[id])
		}
		result.Suggestions = append(result.Suggestions, Suggestion{Items: full, Score: c.Score, Reason: c.Reason})
	}

	metrics.ObserveSuggestions(occasionLabel(req.Occasion), result.Weather != nil, len(result.Suggestions))
	s.logger.Info("suggestions generated",
		"user_id", userID,
		"occasion", req.Occasion,
		"wardrobe_size", len(items),
		"with_weather", result.Weather != nil,
		"suggestions", len(result.Suggestions),
	)
	return result, nil
}

// lookupWeather never fails the run; missing weather only drops a scoring input.
func (s *service) lookupWeather(ctx context.Context, userID, location string) *weather.Report {
	if location == "" && s.profiles != nil {
		p, err := s.profiles.Get(ctx, userID)
		if err != nil {
			s.logger.Warn("profile lookup failed", "user_id", userID, "error", err)
		} else {
			location = p.Location
		}
	}
	report, err := s.weather.Lookup(ctx, location)
	if err != nil {
		s.logger.Warn("weather unavailable, scoring without it", "location", location, "error", err)
		return nil
	}
	return &report
}

func (s *service) Save(ctx context.Context, userID string, req SaveRequest) (Outfit, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Occasion = strings.ToLower(strings.TrimSpace(req.Occasion))
	req.Reason = strings.TrimSpace(req.Reason)
	if err := s.validator.Struct(req); err != nil {
		return Outfit{}, apperrors.Wrap(apperrors.CodeInvalidInput, "invalid outfit", err)
	}
	if dup := firstDuplicate(req.ItemIDs); dup != "" {
		return Outfit{}, apperrors.Wrap(apperrors.CodeInvalidInput, fmt.Sprintf("item %s listed twice", dup), nil)
	}

	items, err := s.items.GetMany(ctx, userID, req.ItemIDs)
	if err != nil {
		return Outfit{}, apperrors.Wrap(apperrors.CodeStorage, "failed to load items", err)
	}
	if len(items) != len(req.ItemIDs) {
		return Outfit{}, apperrors.Wrap(apperrors.CodeInvalidInput, "outfit references unknown items", nil)
	}

	name := req.Name
	if name == "" {
		name = defaultName(req.Occasion)
	}
	created, err := s.repo.Create(ctx, Outfit{
		ID:        s.newID(),
		UserID:    userID,
		Name:      name,
		Occasion:  req.Occasion,
		Season:    items[0].Season,
		ItemIDs:   req.ItemIDs,
		Score:     req.Score,
		Reason:    req.Reason,
		CreatedAt: s.now().UTC(),
	})
	if err != nil {
		return Outfit{}, apperrors.Wrap(apperrors.CodeStorage, "failed to save outfit", err)
	}
	s.logger.Info("outfit saved", "user_id", userID, "outfit_id", created.ID, "items", len(created.ItemIDs))
	return created, nil
}

func (s *service) List(ctx context.Context, userID string, filter ListFilter) ([]View, error) {
	filter.Occasion = strings.ToLower(strings.TrimSpace(filter.Occasion))
	var (
		outfits []Outfit
		items   []wardrobe.Item
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		outfits, err = s.repo.List(gctx, userID, filter)
		return err
	})
	g.Go(func() error {
		var err error
		items, err = s.items.List(gctx, userID, wardrobe.ItemFilter{})
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, apperrors.Wrap(apperrors.CodeStorage, "failed to list outfits", err)
	}

	byID := make(map[string]wardrobe.Item, len(items))
	for _, it := range items {
		byID[it.ID] = it
	}
	views := make([]View, 0, len(outfits))
	for _, o := range outfits {
		views = append(views, expand(o, byID))
	}
	return views, nil
}

func (s *service) SetFavorite(ctx context.Context, userID, id string, favorite bool) (Outfit, error) {
	o, found, err := s.repo.SetFavorite(ctx, userID, id, favorite)
	if err != nil {
		return Outfit{}, apperrors.Wrap(apperrors.CodeStorage, "failed to update outfit", err)
	}
	if !found {
		return Outfit{}, apperrors.Wrap(apperrors.CodeNotFound, "outfit not found", nil)
	}
	return o, nil
}

func (s *service) Delete(ctx context.Context, userID, id string) error {
	found, err := s.repo.Delete(ctx, userID, id)
	if err != nil {
		return apperrors.Wrap(apperrors.CodeStorage, "failed to delete outfit", err)
	}
	if !found {
		return apperrors.Wrap(apperrors.CodeNotFound, "outfit not found", nil)
	}
	s.logger.Info("outfit deleted", "user_id", userID, "outfit_id", id)
	return nil
}

func (s *service) Share(ctx context.Context, userID, id string) (ShareLink, error) {
	_, found, err := s.repo.Get(ctx, userID, id)
	if err != nil {
		return ShareLink{}, apperrors.Wrap(apperrors.CodeStorage, "failed to load outfit", err)
	}
	if !found {
		return ShareLink{}, apperrors.Wrap(apperrors.CodeNotFound, "outfit not found", nil)
	}
	share, err := s.repo.CreateShare(ctx, Share{
		Token:     s.newID(),
		OutfitID:  id,
		UserID:    userID,
		CreatedAt: s.now().UTC(),
	})
	if err != nil {
		return ShareLink{}, apperrors.Wrap(apperrors.CodeStorage, "failed to share outfit", err)
	}
	s.logger.Info("outfit shared", "user_id", userID, "outfit_id", id)
	return ShareLink{Token: share.Token, Path: sharedPathPrefix + share.Token}, nil
}

func (s *service) Shared(ctx context.Context, token string) (View, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return View{}, apperrors.Wrap(apperrors.CodeNotFound, "shared outfit not found", nil)
	}
	o, found, err := s.repo.SharedOutfit(ctx, token)
	if err != nil {
		return View{}, apperrors.Wrap(apperrors.CodeStorage, "failed to load shared outfit", err)
	}
	if !found {
		return View{}, apperrors.Wrap(apperrors.CodeNotFound, "shared outfit not found", nil)
	}
	items, err := s.items.GetMany(ctx, o.UserID, o.ItemIDs)
	if err != nil {
		return View{}, apperrors.Wrap(apperrors.CodeStorage, "failed to load outfit items", err)
	}
	return View{Outfit: o, Details: items}, nil
}

func expand(o Outfit, byID map[string]wardrobe.Item) View {
	details := make([]wardrobe.Item, 0, len(o.ItemIDs))
	for _, id := range o.ItemIDs {
		if it, ok := byID[id]; ok {
			details = append(details, it)
		}
	}
	return View{Outfit: o, Details: details}
}

func firstDuplicate(ids []string) string {
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			return id
		}
		seen[id] = struct{}{}
	}
	return ""
}

func defaultName(occasion string) string {
	r, size := utf8.DecodeRuneInString(occasion)
	if r == utf8.RuneError {
		return "Outfit"
	}
	return string(unicode.ToUpper(r)) + occasion[size:] + " Outfit"
}

func occasionLabel(occasion string) string {
	if stylist.IsKnownOccasion(occasion) {
		return occasion
	}
	return "other"
}
