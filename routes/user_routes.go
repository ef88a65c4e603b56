package routes

import (
	"github.com/alerta-golpe/api-go/controllers"
	"github.com/gin-gonic/gin"
)

func SetupUserRoutes(public, protected *gin.RouterGroup, userController *controllers.UserController) {
	users := public.Group("/users")
	{
		users.GET("", userController.List)
		users.GET("/:id", userController.Get)
		users.GET("/:id/scams", userController.ListScams)
		users.GET("/:id/stats", userController.Stats)
	}

	// Own account
	me := protected.Group("/users")
	{
		me.PATCH("/profile", userController.UpdateProfile)
		me.PATCH("/password", userController.ChangePassword)
		me.DELETE("/profile", userController.DeleteProfile)
		me.PATCH("/:id", userController.UpdateByID)
	}
}
