package routes

import (
	"github.com/gin-gonic/gin"

	userhandlers "fixdesk/internal/interfaces/http/handlers/user"
	"fixdesk/internal/interfaces/http/middleware"
)

type UserRouteConfig struct {
	UserHandler    *userhandlers.UserHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupUserRoutes(engine *gin.Engine, config *UserRouteConfig) {
	auth := engine.Group("/auth")
	{
		auth.POST("/register", config.UserHandler.Register)
		auth.POST("/login", config.UserHandler.Login)
	}

	users := engine.Group("/users")
	users.Use(config.AuthMiddleware.RequireAuth())
	{
		users.PUT("/:id/role", config.UserHandler.SetRole)
	}
}
