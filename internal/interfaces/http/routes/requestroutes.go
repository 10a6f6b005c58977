package routes

import (
	"github.com/gin-gonic/gin"

	requesthandlers "fixdesk/internal/interfaces/http/handlers/request"
	"fixdesk/internal/interfaces/http/middleware"
)

type RequestRouteConfig struct {
	RequestHandler *requesthandlers.RequestHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupRequestRoutes(engine *gin.Engine, config *RequestRouteConfig) {
	requests := engine.Group("/requests")
	requests.Use(config.AuthMiddleware.RequireAuth())
	{
		requests.POST("", config.RequestHandler.CreateRequest)
		requests.GET("", config.RequestHandler.SearchRequests)

		// Specific paths before parameterized ones.
		requests.GET("/stats", config.RequestHandler.CountByStatus)

		requests.POST("/:id/comments", config.RequestHandler.AddComment)
		requests.GET("/:id/comments", config.RequestHandler.ListComments)

		requests.GET("/:id", config.RequestHandler.GetRequest)
		requests.PATCH("/:id", config.RequestHandler.UpdateRequest)
	}
}
