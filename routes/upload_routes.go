package routes

import (
	"github.com/alerta-golpe/api-go/controllers"
	"github.com/gin-gonic/gin"
)

func SetupUploadRoutes(r *gin.RouterGroup, uploadController *controllers.UploadController) {
	upload := r.Group("/upload")
	{
		upload.POST("/evidence/presigned-url", uploadController.GetEvidenceUploadURL)
		upload.DELETE("/evidence/*key", uploadController.DeleteEvidence)
	}
}
