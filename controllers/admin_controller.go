package controllers

import (
	"net/http"

	"github.com/alerta-golpe/api-go/models"
	"github.com/alerta-golpe/api-go/services"
	"github.com/alerta-golpe/api-go/types"
	"github.com/alerta-golpe/api-go/utils"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type AdminController struct {
	Admin *services.AdminService
	Log   *logrus.Logger
}

func NewAdminController(admin *services.AdminService, log *logrus.Logger) *AdminController {
	return &AdminController{Admin: admin, Log: log}
}

func (ac *AdminController) Stats(c *gin.Context) {
	stats, err := ac.Admin.SystemStats(c.Request.Context())
	if err != nil {
		respondError(c, ac.Log, err)
		return
	}

	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: stats})
}

func (ac *AdminController) RecentActivity(c *gin.Context) {
	activity, err := ac.Admin.RecentActivity(c.Request.Context())
	if err != nil {
		respondError(c, ac.Log, err)
		return
	}

	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: activity})
}

func (ac *AdminController) PendingReports(c *gin.Context) {
	reports, err := ac.Admin.PendingReports(c.Request.Context())
	if err != nil {
		respondError(c, ac.Log, err)
		return
	}

	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: reports})
}

func (ac *AdminController) UpdateReportStatus(c *gin.Context) {
	id, ok := utils.ParseID(c, "id")
	if !ok {
		respondInvalidID(c, ac.Log)
		return
	}

	var input types.UpdateReportStatusRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindError(c, ac.Log, err)
		return
	}

	if err := ac.Admin.UpdateReportStatus(c.Request.Context(), id, models.ReportStatus(input.Status)); err != nil {
		respondError(c, ac.Log, err)
		return
	}

	c.JSON(http.StatusOK, StandardResponse{Success: true, Message: "Relatório atualizado"})
}

func (ac *AdminController) UpdateScamStatus(c *gin.Context) {
	id, ok := utils.ParseID(c, "id")
	if !ok {
		respondInvalidID(c, ac.Log)
		return
	}

	var input types.UpdateScamStatusRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindError(c, ac.Log, err)
		return
	}

	if err := ac.Admin.UpdateScamStatus(c.Request.Context(), id, models.ScamStatus(input.Status)); err != nil {
		respondError(c, ac.Log, err)
		return
	}

	c.JSON(http.StatusOK, StandardResponse{Success: true, Message: "Status da denúncia atualizado"})
}
