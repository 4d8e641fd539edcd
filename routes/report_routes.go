package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/civicwatch/api-go/controllers"
)

func SetupReportRoutes(r *gin.RouterGroup, reportController *controllers.ReportController) {
	r.POST("/reports", reportController.CreateReport)
	r.GET("/reports", reportController.GetReports)
	r.GET("/my_reports", reportController.GetMyReports)
}
