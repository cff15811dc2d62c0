package handlers

import (
	_ "pipeline_dashboard/docs"
	"pipeline_dashboard/internal/logger"
	"pipeline_dashboard/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies. A nil log discards output.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	if log == nil {
		log = logger.Nop()
	}
	return &Handler{services: services, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), h.requestLogger)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Liveness endpoint
	router.GET("/health", h.liveness)

	h.registerAPIRoutes(router)

	// Live system log stream
	router.GET("/ws", h.wsConnect)

	return router
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api")
	{
		api.POST("/sync", h.sync)
		api.GET("/health", h.health)
		api.GET("/logs", h.getLogs)
		api.POST("/setup", h.setup)
		api.POST("/voice-session", h.voiceSession)
	}
	h.registerLegacyRoutes(api)
}

// registerLegacyRoutes keeps the paths the first dashboard build calls.
func (h *Handler) registerLegacyRoutes(api *gin.RouterGroup) {
	api.POST("/ghl/sync", h.sync)
	api.GET("/debug/logs", h.getLogs)
	api.POST("/ai/chat-token", h.voiceSession)
}
