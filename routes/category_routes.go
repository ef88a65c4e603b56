package routes

import (
	"github.com/alerta-golpe/api-go/controllers"
	"github.com/gin-gonic/gin"
)

func SetupCategoryRoutes(public *gin.RouterGroup, categoryController *controllers.CategoryController) {
	categories := public.Group("/categories")
	{
		categories.GET("", categoryController.List)
		categories.GET("/:slug", categoryController.Get)
	}
}
