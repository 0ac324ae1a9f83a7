package seats

import (
	"stagepass/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupSeatRoutes(rg *gin.RouterGroup, controller Controller) {
	seatGroup := rg.Group("/seats")
	{
		// Reads are public
		seatGroup.GET("", controller.ListSeats)        // GET /api/v1/seats
		seatGroup.GET("/:seatId", controller.GetSeat)  // GET /api/v1/seats/:seatId
	}

	// Mutations require authentication
	protected := rg.Group("/seats")
	protected.Use(middleware.JWTAuth())
	{
		protected.POST("", controller.CreateSeat)           // POST /api/v1/seats
		protected.PUT("/:seatId", controller.UpdateSeat)    // PUT /api/v1/seats/:seatId
		protected.DELETE("/:seatId", controller.DeleteSeat) // DELETE /api/v1/seats/:seatId
	}
}
