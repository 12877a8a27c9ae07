package reservations

import (
	"github.com/gasparellodev/mono-repo2/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupReservationRoutes(rg *gin.RouterGroup, controller *Controller) {
	reservations := rg.Group("/reservations")
	{
		// Availability listings are public
		reservations.GET("/find-all-in-day", controller.FindAllInDay)     // GET /api/v1/reservations/find-all-in-day
		reservations.GET("/find-all-in-month", controller.FindAllInMonth) // GET /api/v1/reservations/find-all-in-month

		protected := reservations.Group("")
		protected.Use(middleware.JWTAuth())
		{
			protected.POST("", controller.Create)                 // POST /api/v1/reservations
			protected.GET("/find-by-user", controller.FindByUser) // GET /api/v1/reservations/find-by-user
			protected.POST("/:id/cancel", controller.Cancel)      // POST /api/v1/reservations/:id/cancel
		}
	}
}
