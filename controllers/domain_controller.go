package controllers

import (
	"net/http"

	"github.com/alerta-golpe/api-go/apperrors"
	"github.com/alerta-golpe/api-go/services"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type DomainController struct {
	Domains *services.DomainService
	Log     *logrus.Logger
}

func NewDomainController(domains *services.DomainService, log *logrus.Logger) *DomainController {
	return &DomainController{Domains: domains, Log: log}
}

func (dc *DomainController) Check(c *gin.Context) {
	domain := c.Query("domain")
	if domain == "" {
		respondError(c, dc.Log, apperrors.Validation("Parâmetro domain é obrigatório"))
		return
	}

	result, err := dc.Domains.Check(c.Request.Context(), domain)
	if err != nil {
		respondError(c, dc.Log, err)
		return
	}

	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: result})
}
