package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	requesthandlers "fixdesk/internal/interfaces/http/handlers/request"
	userhandlers "fixdesk/internal/interfaces/http/handlers/user"
	"fixdesk/internal/interfaces/http/middleware"
	"fixdesk/internal/interfaces/http/routes"
	"fixdesk/internal/shared/logger"
)

type Router struct {
	engine         *gin.Engine
	requestHandler *requesthandlers.RequestHandler
	userHandler    *userhandlers.UserHandler
	authMiddleware *middleware.AuthMiddleware
}

func NewRouter(
	requestHandler *requesthandlers.RequestHandler,
	userHandler *userhandlers.UserHandler,
	authMiddleware *middleware.AuthMiddleware,
	log logger.Interface,
) *Router {
	engine := gin.New()
	engine.Use(middleware.Recovery())
	engine.Use(middleware.Logger(log))

	return &Router{
		engine:         engine,
		requestHandler: requestHandler,
		userHandler:    userHandler,
		authMiddleware: authMiddleware,
	}
}

func (r *Router) SetupRoutes() {
	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.SetupUserRoutes(r.engine, &routes.UserRouteConfig{
		UserHandler:    r.userHandler,
		AuthMiddleware: r.authMiddleware,
	})

	routes.SetupRequestRoutes(r.engine, &routes.RequestRouteConfig{
		RequestHandler: r.requestHandler,
		AuthMiddleware: r.authMiddleware,
	})
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}
