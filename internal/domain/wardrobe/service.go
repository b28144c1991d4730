package wardrobe

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/yanqian/closet-stylist/internal/domain/stylist"
	apperrors "github.com/yanqian/closet-stylist/pkg/errors"
	"github.com/yanqian/closet-stylist/pkg/validator"
)

const maxImageBytes = 5 << 20

var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// Service manages a user's wardrobe catalog.
type Service interface {
	Create(ctx context.Context, userID string, req CreateItemRequest) (Item, error)
	List(ctx context.Context, userID string, filter ItemFilter) ([]Item, error)
	Get(ctx context.Context, userID, id string) (Item, error)
	Delete(ctx context.Context, userID, id string) error
	UploadImage(ctx context.Context, userID, id string, upload ImageUpload) (Item, error)
	Image(ctx context.Context, userID, id string) (ImageContent, error)
}

type service struct {
	repo      Repository
	images    ImageStorage
	validator *validator.Validator
	logger    *slog.Logger
	now       func() time.Time
	newID     func() string
}

// NewService wires up the wardrobe domain.
func NewService(repo Repository, images ImageStorage, v *validator.Validator, logger *slog.Logger) Service {
	return &service{
		repo:      repo,
		images:    images,
		validator: v,
		logger:    logger.With("component", "wardrobe.service"),
		now:       time.Now,
		newID:     uuid.NewString,
	}
}

func (s *service) Create(ctx context.Context, userID string, req CreateItemRequest) (Item, error) {
	req = normalizeCreate(req)
	if err := s.validator.Struct(req); err != nil {
		return Item{}, apperrors.Wrap(apperrors.CodeInvalidInput, "invalid wardrobe item", err)
	}

	item := Item{
		ID:        s.newID(),
		UserID:    userID,
		Name:      req.Name,
		Category:  stylist.Category(req.Category),
		Color:     req.Color,
		Season:    stylist.Season(req.Season),
		StyleTags: req.StyleTags,
		ImageURL:  req.ImageURL,
		CreatedAt: s.now().UTC(),
	}
	created, err := s.repo.Create(ctx, item)
	if err != nil {
		return Item{}, apperrors.Wrap(apperrors.CodeStorage, "failed to save item", err)
	}
	s.logger.Info("wardrobe item created", "user_id", userID, "item_id", created.ID, "category", created.Category)
	return created, nil
}

func (s *service) List(ctx context.Context, userID string, filter ItemFilter) ([]Item, error) {
	if filter.Category != "" && !validCategory(filter.Category) {
		return nil, apperrors.Wrap(apperrors.CodeInvalidInput, fmt.Sprintf("unknown category %q", filter.Category), nil)
	}
	items, err := s.repo.List(ctx, userID, filter)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeStorage, "failed to list items", err)
	}
	return items, nil
}

func (s *service) Get(ctx context.Context, userID, id string) (Item, error) {
	item, found, err := s.repo.Get(ctx, userID, id)
	if err != nil {
		return Item{}, apperrors.Wrap(apperrors.CodeStorage, "failed to load item", err)
	}
	if !found {
		return Item{}, apperrors.Wrap(apperrors.CodeNotFound, "item not found", nil)
	}
	return item, nil
}

func (s *service) Delete(ctx context.Context, userID, id string) error {
	item, found, err := s.repo.Delete(ctx, userID, id)
	if err != nil {
		return apperrors.Wrap(apperrors.CodeStorage, "failed to delete item", err)
	}
	if !found {
		return apperrors.Wrap(apperrors.CodeNotFound, "item not found", nil)
	}
	if item.ImageKey != "" {
		if err := s.images.Delete(ctx, item.ImageKey); err != nil {
			s.logger.Warn("item image cleanup failed", "item_id", id, "key", item.ImageKey, "error", err)
		}
	}
	s.logger.Info("wardrobe item deleted", "user_id", userID, "item_id", id)
	return nil
}

func (s *service) UploadImage(ctx context.Context, userID, id string, upload ImageUpload) (Item, error) {
	if len(upload.Content) == 0 {
		return Item{}, apperrors.Wrap(apperrors.CodeInvalidInput, "image cannot be empty", nil)
	}
	if len(upload.Content) > maxImageBytes {
		return Item{}, apperrors.Wrap(apperrors.CodeInvalidInput, "image exceeds 5 MiB", nil)
	}
	mimeType := resolveMimeType(upload)
	if !strings.HasPrefix(mimeType, "image/") {
		return Item{}, apperrors.Wrap(apperrors.CodeInvalidInput, fmt.Sprintf("unsupported content type %q", mimeType), nil)
	}

	item, err := s.Get(ctx, userID, id)
	if err != nil {
		return Item{}, err
	}

	key := imageKey(userID, id, upload.Filename, mimeType)
	if _, err := s.images.Put(ctx, key, upload.Content, mimeType); err != nil {
		return Item{}, apperrors.Wrap(apperrors.CodeStorage, "failed to store image", err)
	}
	updated, found, err := s.repo.SetImage(ctx, userID, id, key, imageURL(id), mimeType)
	if err != nil {
		return Item{}, apperrors.Wrap(apperrors.CodeStorage, "failed to attach image", err)
	}
	if !found {
		return Item{}, apperrors.Wrap(apperrors.CodeNotFound, "item not found", nil)
	}
	if item.ImageKey != "" && item.ImageKey != key {
		if err := s.images.Delete(ctx, item.ImageKey); err != nil {
			s.logger.Warn("previous item image cleanup failed", "item_id", id, "key", item.ImageKey, "error", err)
		}
	}
	s.logger.Info("wardrobe item image stored", "user_id", userID, "item_id", id, "bytes", len(upload.Content))
	return updated, nil
}

func (s *service) Image(ctx context.Context, userID, id string) (ImageContent, error) {
	item, err := s.Get(ctx, userID, id)
	if err != nil {
		return ImageContent{}, err
	}
	if item.ImageKey == "" {
		return ImageContent{}, apperrors.Wrap(apperrors.CodeNotFound, "item has no stored image", nil)
	}
	body, err := s.images.Get(ctx, item.ImageKey)
	if err != nil {
		return ImageContent{}, apperrors.Wrap(apperrors.CodeStorage, "failed to read image", err)
	}
	return ImageContent{Body: body, MimeType: item.ImageType}, nil
}

func normalizeCreate(req CreateItemRequest) CreateItemRequest {
	req.Name = strings.TrimSpace(req.Name)
	req.Category = strings.ToLower(strings.TrimSpace(req.Category))
	req.Color = strings.ToLower(strings.TrimSpace(req.Color))
	req.Season = strings.ToLower(strings.TrimSpace(req.Season))
	if req.Season == "" {
		req.Season = string(stylist.SeasonAllSeason)
	}
	req.ImageURL = strings.TrimSpace(req.ImageURL)
	req.StyleTags = normalizeTags(req.StyleTags)
	return req
}

func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		clean := strings.ToLower(strings.TrimSpace(tag))
		if clean == "" {
			continue
		}
		if _, ok := seen[clean]; ok {
			continue
		}
		seen[clean] = struct{}{}
		out = append(out, clean)
	}
	return out
}

func validCategory(c stylist.Category) bool {
	for _, known := range stylist.Categories {
		if c == known {
			return true
		}
	}
	return false
}

func resolveMimeType(upload ImageUpload) string {
	declared := strings.ToLower(strings.TrimSpace(strings.SplitN(upload.MimeType, ";", 2)[0]))
	if declared != "" && declared != "application/octet-stream" {
		return declared
	}
	return http.DetectContentType(upload.Content)
}

func imageKey(userID, id, filename, mimeType string) string {
	ext, ok := imageExtensions[mimeType]
	if !ok {
		ext = strings.ToLower(filepath.Ext(filename))
	}
	return fmt.Sprintf("items/%s/%s%s", userID, id, ext)
}

func imageURL(id string) string {
	return "/api/v1/wardrobe/items/" + id + "/image"
}
