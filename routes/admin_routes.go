package routes

import (
	"github.com/alerta-golpe/api-go/controllers"
	"github.com/gin-gonic/gin"
)

// SetupAdminRoutes expects a group already guarded by RequireAdmin.
func SetupAdminRoutes(admin *gin.RouterGroup, adminController *controllers.AdminController) {
	admin.GET("/stats", adminController.Stats)
	admin.GET("/recent-activity", adminController.RecentActivity)
	admin.GET("/reports", adminController.PendingReports)
	admin.PATCH("/reports/:id", adminController.UpdateReportStatus)
	admin.PATCH("/scams/:id/status", adminController.UpdateScamStatus)
}
