package wardrobe_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/closet-stylist/internal/domain/stylist"
	"github.com/yanqian/closet-stylist/internal/domain/wardrobe"
	"github.com/yanqian/closet-stylist/internal/infra/imagestore"
	"github.com/yanqian/closet-stylist/internal/infra/wardroberepo"
	apperrors "github.com/yanqian/closet-stylist/pkg/errors"
	"github.com/yanqian/closet-stylist/pkg/validator"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func newService(t *testing.T) (wardrobe.Service, *imagestore.MemoryStore) {
	t.Helper()
	store := imagestore.NewMemoryStore()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return wardrobe.NewService(wardroberepo.NewMemoryRepository(), store, validator.New(), logger), store
}

func TestCreateNormalizesItem(t *testing.T) {
	svc, _ := newService(t)

	item, err := svc.Create(context.Background(), "u1", wardrobe.CreateItemRequest{
		Name:      "  Linen Shirt ",
		Category:  "Tops",
		Color:     " White",
		StyleTags: []string{"Casual", "casual ", "", "Minimal"},
	})
	require.NoError(t, err)
	require.NotEmpty(t, item.ID)
	require.Equal(t, "u1", item.UserID)
	require.Equal(t, "Linen Shirt", item.Name)
	require.Equal(t, stylist.CategoryTops, item.Category)
	require.Equal(t, "white", item.Color)
	require.Equal(t, stylist.SeasonAllSeason, item.Season)
	require.Equal(t, []string{"casual", "minimal"}, item.StyleTags)
	require.WithinDuration(t, time.Now(), item.CreatedAt, time.Minute)
}

func TestCreateRejectsInvalidInput(t *testing.T) {
	svc, _ := newService(t)
	cases := map[string]wardrobe.CreateItemRequest{
		"missing name":     {Category: "tops", Color: "red"},
		"unknown category": {Name: "Cape", Category: "capes", Color: "red"},
		"unknown season":   {Name: "Tee", Category: "tops", Color: "red", Season: "monsoon"},
		"missing color":    {Name: "Tee", Category: "tops"},
		"bad image url":    {Name: "Tee", Category: "tops", Color: "red", ImageURL: "not a url"},
	}
	for name, req := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), "u1", req)
			require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidInput), "got %v", err)
		})
	}
}

func TestListNewestFirstAndFiltered(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()
	first := mustCreate(t, svc, "u1", "Tee", "tops")
	second := mustCreate(t, svc, "u1", "Jeans", "bottoms")
	mustCreate(t, svc, "u2", "Other", "tops")

	items, err := svc.List(ctx, "u1", wardrobe.ItemFilter{})
	require.NoError(t, err)
	require.Equal(t, []string{second.ID, first.ID}, ids(items))

	items, err = svc.List(ctx, "u1", wardrobe.ItemFilter{Category: stylist.CategoryTops})
	require.NoError(t, err)
	require.Equal(t, []string{first.ID}, ids(items))

	_, err = svc.List(ctx, "u1", wardrobe.ItemFilter{Category: "capes"})
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidInput))
}

func TestGetIsScopedToOwner(t *testing.T) {
	svc, _ := newService(t)
	item := mustCreate(t, svc, "u1", "Tee", "tops")

	got, err := svc.Get(context.Background(), "u1", item.ID)
	require.NoError(t, err)
	require.Equal(t, item.Name, got.Name)

	_, err = svc.Get(context.Background(), "u2", item.ID)
	require.True(t, apperrors.IsCode(err, apperrors.CodeNotFound))
}

func TestUploadImageStoresAndServesPhoto(t *testing.T) {
	svc, store := newService(t)
	ctx := context.Background()
	item := mustCreate(t, svc, "u1", "Tee", "tops")

	updated, err := svc.UploadImage(ctx, "u1", item.ID, wardrobe.ImageUpload{
		Filename: "tee.png",
		Content:  pngHeader,
	})
	require.NoError(t, err)
	require.Equal(t, "/api/v1/wardrobe/items/"+item.ID+"/image", updated.ImageURL)
	require.Equal(t, "items/u1/"+item.ID+".png", updated.ImageKey)
	require.Equal(t, "image/png", updated.ImageType)
	require.Equal(t, 1, store.Len())

	img, err := svc.Image(ctx, "u1", item.ID)
	require.NoError(t, err)
	defer img.Body.Close()
	body, err := io.ReadAll(img.Body)
	require.NoError(t, err)
	require.Equal(t, pngHeader, body)
	require.Equal(t, "image/png", img.MimeType)

	require.NoError(t, svc.Delete(ctx, "u1", item.ID))
	require.Equal(t, 0, store.Len())
	_, err = svc.Get(ctx, "u1", item.ID)
	require.True(t, apperrors.IsCode(err, apperrors.CodeNotFound))
}

func TestUploadImageValidation(t *testing.T) {
	svc, store := newService(t)
	ctx := context.Background()
	item := mustCreate(t, svc, "u1", "Tee", "tops")

	_, err := svc.UploadImage(ctx, "u1", item.ID, wardrobe.ImageUpload{Filename: "notes.txt", MimeType: "text/plain", Content: []byte("hello")})
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidInput))

	_, err = svc.UploadImage(ctx, "u1", item.ID, wardrobe.ImageUpload{Filename: "big.jpg", MimeType: "image/jpeg", Content: make([]byte, 5<<20+1)})
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidInput))

	_, err = svc.UploadImage(ctx, "u1", item.ID, wardrobe.ImageUpload{Filename: "empty.jpg", MimeType: "image/jpeg"})
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidInput))

	_, err = svc.UploadImage(ctx, "u2", item.ID, wardrobe.ImageUpload{Filename: "tee.png", Content: pngHeader})
	require.True(t, apperrors.IsCode(err, apperrors.CodeNotFound))
	require.Equal(t, 0, store.Len())

	_, err = svc.Image(ctx, "u1", item.ID)
	require.True(t, apperrors.IsCode(err, apperrors.CodeNotFound))
}

func TestUploadImageReplacesPreviousPhoto(t *testing.T) {
	svc, store := newService(t)
	ctx := context.Background()
	item := mustCreate(t, svc, "u1", "Tee", "tops")

	_, err := svc.UploadImage(ctx, "u1", item.ID, wardrobe.ImageUpload{Filename: "a.png", Content: pngHeader})
	require.NoError(t, err)
	updated, err := svc.UploadImage(ctx, "u1", item.ID, wardrobe.ImageUpload{Filename: "a.jpg", MimeType: "image/jpeg", Content: []byte("jpeg-bytes")})
	require.NoError(t, err)
	require.Equal(t, "items/u1/"+item.ID+".jpg", updated.ImageKey)
	require.Equal(t, 1, store.Len())
}

func TestDeleteMissingItem(t *testing.T) {
	svc, _ := newService(t)
	err := svc.Delete(context.Background(), "u1", "nope")
	require.True(t, apperrors.IsCode(err, apperrors.CodeNotFound))
}

func mustCreate(t *testing.T, svc wardrobe.Service, userID, name, category string) wardrobe.Item {
	t.Helper()
	item, err := svc.Create(context.Background(), userID, wardrobe.CreateItemRequest{Name: name, Category: category, Color: "black"})
	require.NoError(t, err)
	return item
}

func ids(items []wardrobe.Item) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}
