package handlers

import (
	"auctionhouse/internal/logger"
	"auctionhouse/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{services: services, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	// Auth endpoints
	h.registerAuthRoutes(router)

	// Public read-only auction endpoints
	h.registerPublicRoutes(router)

	// Versioned API endpoints (protected)
	h.registerAPIRoutes(router)

	// Live auction feed over WebSocket — same port
	router.GET("/ws", h.wsFeed)

	return router
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		auth.POST("/sign-up", h.signUp)
		auth.POST("/sign-in", h.signIn)
	}
}

func (h *Handler) registerPublicRoutes(r *gin.Engine) {
	auctions := r.Group("/auctions")
	{
		auctions.GET("", h.listAuctions)
		auctions.GET("/:id", h.getAuction)
	}
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api/v1", h.sessionMiddleware)
	{
		h.registerAuctionRoutes(api)
		h.registerLogRoutes(api)
	}
}

func (h *Handler) registerAuctionRoutes(api *gin.RouterGroup) {
	auctions := api.Group("/auctions")
	{
		// Body example: {"item":"Widget","start_price":10,"duration_sec":60}
		auctions.POST("", h.createAuction)
		auctions.POST("/:id/bids", h.placeBid)
	}
}

func (h *Handler) registerLogRoutes(api *gin.RouterGroup) {
	logs := api.Group("/logs")
	{
		logs.GET("/", h.getLogs)
	}
}
