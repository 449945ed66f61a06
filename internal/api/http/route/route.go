package route

import (
	"io"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"actionlog/internal/api/http/handler"
	"actionlog/internal/api/http/middleware"
	"actionlog/internal/config"
)

func SetupRouter(
	log *zap.Logger,
	cfg *config.Config,
	webhookHdl WebhookHandler,
	healthHdl HealthHandler,
	rootHdl RootHandler,
) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	gin.DefaultWriter = io.Discard

	router := gin.Default()

	// middleware
	router.Use(middleware.Logger(log))
	router.Use(middleware.RequestTimeout(cfg.HTTPServer.Timeout.Request))
	router.Use(middleware.CORS(cfg.CORS))

	router.HandleMethodNotAllowed = true
	router.NoMethod(handler.NoMethod)
	router.NoRoute(handler.NoRoute)

	router.GET("/", rootHdl.Index)

	webhookPath := router.Group("/webhook")
	RegisterWebhook(webhookPath, webhookHdl)

	healthPath := router.Group("/health")
	RegisterHealth(healthPath, healthHdl)

	return router
}

type RootHandler interface {
	Index(c *gin.Context)
}
