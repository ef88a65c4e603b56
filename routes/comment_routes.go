package routes

import (
	"github.com/alerta-golpe/api-go/controllers"
	"github.com/gin-gonic/gin"
)

func SetupCommentRoutes(public, protected *gin.RouterGroup, commentController *controllers.CommentController) {
	public.GET("/comments/:id", commentController.Get)

	comments := protected.Group("/comments")
	{
		comments.POST("", commentController.Create)
		comments.PATCH("/:id", commentController.Update)
		comments.DELETE("/:id", commentController.Delete)
	}
}
