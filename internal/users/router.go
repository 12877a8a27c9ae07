package users

import (
	"github.com/gasparellodev/mono-repo2/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupUserRoutes(rg *gin.RouterGroup, controller *Controller) {
	me := rg.Group("/users/me")
	me.Use(middleware.JWTAuth())
	{
		me.GET("", controller.GetMe)      // GET /api/v1/users/me
		me.PATCH("", controller.UpdateMe) // PATCH /api/v1/users/me
	}
}
