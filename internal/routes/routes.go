package routes

import (
	"jobhunt_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires every handler under /api. Auth endpoints get the
// stricter rate limit and stay public; everything else requires a valid
// access token.
func RegisterRoutes(
	ginRouter *gin.Engine,
	appHandlers *handlers.AppHandlers,
	authMW gin.HandlerFunc,
	authRateLimitMW gin.HandlerFunc,
) {
	api := ginRouter.Group("/api")

	public := api.Group("")
	public.Use(authRateLimitMW)
	{
		appHandlers.AuthHandler.RegisterRoutes(public)
	}

	protected := api.Group("")
	protected.Use(authMW)
	{
		appHandlers.UserHandler.RegisterRoutes(protected)
		appHandlers.JobHandler.RegisterRoutes(protected)
		appHandlers.InterviewHandler.RegisterRoutes(protected)
	}
}
