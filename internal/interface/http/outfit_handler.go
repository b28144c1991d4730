package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/closet-stylist/internal/domain/outfit"
)

type favoriteRequest struct {
	IsFavorite *bool `json:"isFavorite" binding:"required"`
}

// SuggestOutfits ranks outfit candidates from the caller's wardrobe.
func (h *Handler) SuggestOutfits(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	var req outfit.SuggestRequest
	if !bindJSON(c, &req) {
		return
	}
	resp, err := h.outfitSvc.Suggest(c.Request.Context(), userID, req)
	if err != nil {
		abortWithError(c, fromDomainError(err))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SaveOutfit stores a suggestion in the caller's catalog.
func (h *Handler) SaveOutfit(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	var req outfit.SaveRequest
	if !bindJSON(c, &req) {
		return
	}
	saved, err := h.outfitSvc.Save(c.Request.Context(), userID, req)
	if err != nil {
		abortWithError(c, fromDomainError(err))
		return
	}
	c.JSON(http.StatusCreated, saved)
}

// ListOutfits returns saved outfits, optionally filtered by ?occasion=.
func (h *Handler) ListOutfits(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	views, err := h.outfitSvc.List(c.Request.Context(), userID, outfit.ListFilter{Occasion: c.Query("occasion")})
	if err != nil {
		abortWithError(c, fromDomainError(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"outfits": views})
}

// SetFavorite toggles the favorite flag.
func (h *Handler) SetFavorite(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	var req favoriteRequest
	if !bindJSON(c, &req) {
		return
	}
	updated, err := h.outfitSvc.SetFavorite(c.Request.Context(), userID, c.Param("id"), *req.IsFavorite)
	if err != nil {
		abortWithError(c, fromDomainError(err))
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteOutfit removes a saved outfit.
func (h *Handler) DeleteOutfit(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	if err := h.outfitSvc.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		abortWithError(c, fromDomainError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// ShareOutfit creates a public link.
func (h *Handler) ShareOutfit(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	link, err := h.outfitSvc.Share(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		abortWithError(c, fromDomainError(err))
		return
	}
	c.JSON(http.StatusCreated, link)
}

// SharedOutfit resolves a share token without authentication.
func (h *Handler) SharedOutfit(c *gin.Context) {
	view, err := h.outfitSvc.Shared(c.Request.Context(), c.Param("token"))
	if err != nil {
		abortWithError(c, fromDomainError(err))
		return
	}
	c.JSON(http.StatusOK, view)
}
