package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/closet-stylist/internal/domain/auth"
	"github.com/yanqian/closet-stylist/internal/infra/config"
	"github.com/yanqian/closet-stylist/pkg/metrics"
)

// NewRouter wires up the HTTP handlers and returns a configured server.
func NewRouter(cfg *config.Config, handler *Handler, authSvc auth.Service) *http.Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.MaxMultipartMemory = 8 << 20
	router.Use(
		gin.Recovery(),
		requestLogger(handler.logger),
		metricsMiddleware(),
		corsMiddleware(cfg.HTTP.AllowedOrigins),
		errorHandlingMiddleware(handler.logger),
		rateLimitMiddleware(cfg.HTTP.RateLimit, handler.logger),
	)

	router.GET("/healthz", handler.Health)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	api := router.Group("/api/v1")
	api.GET("/shared/:token", handler.SharedOutfit)

	secured := api.Group("")
	secured.Use(authMiddleware(authSvc))
	{
		secured.GET("/profile", handler.GetProfile)
		secured.PUT("/profile", handler.UpdateProfile)

		secured.GET("/wardrobe/items", handler.ListItems)
		secured.POST("/wardrobe/items", handler.CreateItem)
		secured.GET("/wardrobe/items/:id", handler.GetItem)
		secured.DELETE("/wardrobe/items/:id", handler.DeleteItem)
		secured.PUT("/wardrobe/items/:id/image", handler.UploadItemImage)
		secured.GET("/wardrobe/items/:id/image", handler.ItemImage)

		secured.GET("/weather", handler.Weather)

		secured.POST("/outfits/suggestions", handler.SuggestOutfits)
		secured.GET("/outfits", handler.ListOutfits)
		secured.POST("/outfits", handler.SaveOutfit)
		secured.PATCH("/outfits/:id/favorite", handler.SetFavorite)
		secured.DELETE("/outfits/:id", handler.DeleteOutfit)
		secured.POST("/outfits/:id/share", handler.ShareOutfit)
	}

	return &http.Server{
		Addr:           cfg.HTTP.Address,
		Handler:        withRetry(router, cfg.HTTP.Retry, handler.logger),
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		MaxHeaderBytes: 1 << 20,
	}
}
