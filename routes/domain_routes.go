package routes

import (
	"github.com/alerta-golpe/api-go/controllers"
	"github.com/gin-gonic/gin"
)

func SetupDomainRoutes(public *gin.RouterGroup, domainController *controllers.DomainController) {
	public.GET("/domains/check", domainController.Check)
}
