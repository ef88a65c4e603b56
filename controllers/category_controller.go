package controllers

import (
	"net/http"
	"strings"

	"github.com/alerta-golpe/api-go/services"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type CategoryController struct {
	Categories *services.CategoryService
	Log        *logrus.Logger
}

func NewCategoryController(categories *services.CategoryService, log *logrus.Logger) *CategoryController {
	return &CategoryController{Categories: categories, Log: log}
}

func (cc *CategoryController) List(c *gin.Context) {
	categories, err := cc.Categories.List(c.Request.Context())
	if err != nil {
		respondError(c, cc.Log, err)
		return
	}

	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: categories})
}

func (cc *CategoryController) Get(c *gin.Context) {
	category, err := cc.Categories.Get(c.Request.Context(), strings.ToLower(c.Param("slug")))
	if err != nil {
		respondError(c, cc.Log, err)
		return
	}

	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: category})
}
