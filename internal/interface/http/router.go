package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campusdesk/college-helpdesk/internal/infra/config"
)

// NewRouter assembles the gin engine and wraps it in an http.Server.
func NewRouter(cfg config.HTTPConfig, adminCfg config.AdminConfig, handler *Handler, logger *slog.Logger) *http.Server {
	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()
	engine.Use(
		gin.Recovery(),
		requestIDMiddleware(),
		requestLogger(logger.With("component", "http.server")),
		corsMiddleware(cfg.AllowedOrigins),
		rateLimitMiddleware(cfg.RateLimit, logger),
		errorHandlingMiddleware(logger),
	)

	engine.GET("/", handler.Home)
	engine.POST("/chat", handler.Chat)
	engine.POST("/webhook/whatsapp", handler.WhatsAppWebhook)

	api := engine.Group("/api")
	{
		api.GET("/categories", handler.Categories)
		api.GET("/faqs/:category", handler.FAQsByCategory)
		api.GET("/stats", statsAuthMiddleware(adminCfg.JWTSecret), handler.Stats)
	}

	return &http.Server{
		Addr:         cfg.Address,
		Handler:      engine,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
}
