package http

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/closet-stylist/internal/domain/stylist"
	"github.com/yanqian/closet-stylist/internal/domain/wardrobe"
)

const maxUploadBytes = 5<<20 + 1

// CreateItem catalogs a new wardrobe item.
func (h *Handler) CreateItem(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	var req wardrobe.CreateItemRequest
	if !bindJSON(c, &req) {
		return
	}
	item, err := h.wardrobeSvc.Create(c.Request.Context(), userID, req)
	if err != nil {
		abortWithError(c, fromDomainError(err))
		return
	}
	c.JSON(http.StatusCreated, item)
}

// ListItems returns the caller's items, optionally filtered by ?category=.
func (h *Handler) ListItems(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	items, err := h.wardrobeSvc.List(c.Request.Context(), userID, wardrobe.ItemFilter{
		Category: stylist.Category(c.Query("category")),
	})
	if err != nil {
		abortWithError(c, fromDomainError(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// GetItem returns one item.
func (h *Handler) GetItem(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	item, err := h.wardrobeSvc.Get(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		abortWithError(c, fromDomainError(err))
		return
	}
	c.JSON(http.StatusOK, item)
}

// DeleteItem removes an item and its photo.
func (h *Handler) DeleteItem(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	if err := h.wardrobeSvc.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		abortWithError(c, fromDomainError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// UploadItemImage accepts a multipart "image" file for an item.
func (h *Handler) UploadItemImage(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	fileHeader, err := c.FormFile("image")
	if err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "image file is required", err))
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "failed to read upload", err))
		return
	}
	defer file.Close()
	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		abortWithError(c, NewHTTPError(http.StatusInternalServerError, "upload_failed", "failed to read file", err))
		return
	}

	item, err := h.wardrobeSvc.UploadImage(c.Request.Context(), userID, c.Param("id"), wardrobe.ImageUpload{
		Filename: fileHeader.Filename,
		MimeType: fileHeader.Header.Get("Content-Type"),
		Content:  data,
	})
	if err != nil {
		abortWithError(c, fromDomainError(err))
		return
	}
	c.JSON(http.StatusOK, item)
}

// ItemImage streams the stored photo.
func (h *Handler) ItemImage(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	img, err := h.wardrobeSvc.Image(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		abortWithError(c, fromDomainError(err))
		return
	}
	defer img.Body.Close()
	c.Header("Cache-Control", "private, max-age=300")
	c.DataFromReader(http.StatusOK, -1, img.MimeType, img.Body, nil)
}
