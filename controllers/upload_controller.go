package controllers

import (
	"net/http"

	"github.com/alerta-golpe/api-go/services"
	"github.com/alerta-golpe/api-go/types"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type UploadController struct {
	Uploads *services.UploadService
	Log     *logrus.Logger
}

func NewUploadController(uploads *services.UploadService, log *logrus.Logger) *UploadController {
	return &UploadController{Uploads: uploads, Log: log}
}

// GetEvidenceUploadURL signs a direct PUT to object storage for one evidence file.
func (uc *UploadController) GetEvidenceUploadURL(c *gin.Context) {
	session, ok := requireSession(c, uc.Log)
	if !ok {
		return
	}

	var req types.PresignedURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, uc.Log, err)
		return
	}

	response, err := uc.Uploads.PresignEvidence(c.Request.Context(), session.UserID, req.FileName, req.ContentType, req.FileSize)
	if err != nil {
		respondError(c, uc.Log, err)
		return
	}

	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: response})
}

func (uc *UploadController) DeleteEvidence(c *gin.Context) {
	session, ok := requireSession(c, uc.Log)
	if !ok {
		return
	}

	if err := uc.Uploads.DeleteEvidence(c.Request.Context(), session.UserID, c.Param("key")); err != nil {
		respondError(c, uc.Log, err)
		return
	}

	c.JSON(http.StatusOK, StandardResponse{Success: true, Message: "Arquivo removido"})
}
