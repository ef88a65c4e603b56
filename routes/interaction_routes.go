package routes

import (
	"github.com/alerta-golpe/api-go/controllers"
	"github.com/gin-gonic/gin"
)

func SetupInteractionRoutes(protected *gin.RouterGroup, scamController *controllers.ScamController) {
	// Scam interactions
	scams := protected.Group("/scams")
	{
		scams.POST("/:id/like", scamController.Like)
		scams.POST("/:id/save", scamController.Save)
		scams.DELETE("/:id/save", scamController.Unsave)
		scams.POST("/:id/report", scamController.Report)
	}

	protected.GET("/saved-scams", scamController.ListSaved)
}
