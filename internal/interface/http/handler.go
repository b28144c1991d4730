package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/closet-stylist/internal/domain/outfit"
	"github.com/yanqian/closet-stylist/internal/domain/profile"
	"github.com/yanqian/closet-stylist/internal/domain/wardrobe"
	"github.com/yanqian/closet-stylist/internal/domain/weather"
)

// Handler wires the HTTP transport to domain services.
type Handler struct {
	wardrobeSvc wardrobe.Service
	outfitSvc   outfit.Service
	weatherSvc  weather.Service
	profileSvc  profile.Service
	logger      *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(
	wardrobeSvc wardrobe.Service,
	outfitSvc outfit.Service,
	weatherSvc weather.Service,
	profileSvc profile.Service,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		wardrobeSvc: wardrobeSvc,
		outfitSvc:   outfitSvc,
		weatherSvc:  weatherSvc,
		profileSvc:  profileSvc,
		logger:      logger.With("component", "http.handler"),
	}
}

// Health reports liveness.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Weather returns current conditions for ?location=, or the default location.
func (h *Handler) Weather(c *gin.Context) {
	report, err := h.weatherSvc.Lookup(c.Request.Context(), c.Query("location"))
	if err != nil {
		abortWithError(c, fromDomainError(err))
		return
	}
	c.JSON(http.StatusOK, report)
}

// GetProfile returns the caller's profile.
func (h *Handler) GetProfile(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	p, err := h.profileSvc.Get(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, fromDomainError(err))
		return
	}
	c.JSON(http.StatusOK, p)
}

// UpdateProfile replaces the caller's profile fields.
func (h *Handler) UpdateProfile(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	var req profile.UpdateRequest
	if !bindJSON(c, &req) {
		return
	}
	p, err := h.profileSvc.Update(c.Request.Context(), userID, req)
	if err != nil {
		abortWithError(c, fromDomainError(err))
		return
	}
	c.JSON(http.StatusOK, p)
}

func requireUser(c *gin.Context) (string, bool) {
	userID, ok := currentUserID(c)
	if !ok {
		abortWithError(c, NewHTTPError(http.StatusUnauthorized, "unauthorized", "missing token", nil))
		return "", false
	}
	return userID, true
}

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return false
	}
	return true
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
