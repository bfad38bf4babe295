package handlers

import (
	"slices"
	"time"

	_ "todo_backend/docs"
	"todo_backend/internal/logger"
	"todo_backend/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services       *service.Service
	log            *logger.Logger
	allowedOrigins []string
}

// NewHandler constructs a new HTTP handler with dependencies.
// An empty origin list allows any origin.
func NewHandler(services *service.Service, log *logger.Logger, allowedOrigins ...string) *Handler {
	return &Handler{services: services, log: log, allowedOrigins: allowedOrigins}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), h.requestLogger, cors.New(h.corsConfig()))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/health", h.health)

	api := router.Group("/api/v1")
	{
		h.registerAuthRoutes(api)
		h.registerTodoRoutes(api)
		h.registerActivityRoutes(api)
	}

	// Browsers cannot set headers on a WebSocket handshake, so the feed also accepts ?token=.
	router.GET("/ws/todo", h.wsUserIdMiddleware, h.wsConnect)

	return router
}

func (h *Handler) corsConfig() cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if h.allowAnyOrigin() {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = h.allowedOrigins
	cfg.AllowCredentials = true
	return cfg
}

func (h *Handler) allowAnyOrigin() bool {
	if len(h.allowedOrigins) == 0 {
		return true
	}
	return slices.Contains(h.allowedOrigins, "*")
}

func (h *Handler) registerAuthRoutes(api *gin.RouterGroup) {
	auth := api.Group("/auth")
	{
		auth.POST("/sign-up", h.signUp)
		auth.POST("/sign-in", h.signIn)
		auth.GET("/me", h.userIdMiddleware, h.me)
	}
}

func (h *Handler) registerTodoRoutes(api *gin.RouterGroup) {
	todo := api.Group("/todo", h.userIdMiddleware)
	{
		todo.GET("", h.getTodos)
		todo.POST("", h.createTodo)
		// Body: {"todoId":"<uuid>","isDone":true,"content":"optional"}
		todo.PATCH("", h.updateTodo)
		todo.DELETE("", h.deleteTodo)
		todo.GET("/stats", h.getStats)
	}
}

func (h *Handler) registerActivityRoutes(api *gin.RouterGroup) {
	activity := api.Group("/activity", h.userIdMiddleware)
	{
		activity.GET("/", h.getActivity)
	}
}
