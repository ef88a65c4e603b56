package routes

import (
	"github.com/alerta-golpe/api-go/controllers"
	"github.com/gin-gonic/gin"
)

func SetupScamRoutes(public, protected *gin.RouterGroup, scamController *controllers.ScamController, commentController *controllers.CommentController) {
	scams := public.Group("/scams")
	{
		scams.GET("", scamController.List)
		scams.GET("/:id", scamController.Get)
		scams.GET("/:id/comments", commentController.ListForScam)
	}

	owned := protected.Group("/scams")
	{
		owned.POST("", scamController.Create)
		owned.PATCH("/:id", scamController.Update)
		owned.DELETE("/:id", scamController.Delete)
		owned.POST("/:id/resolve", scamController.Resolve)
	}
}
