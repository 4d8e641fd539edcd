package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/civicwatch/api-go/controllers"
)

// SetupAdminRoutes wires every /admin endpoint. The caller attaches the
// authentication and admin-role middleware to the group.
func SetupAdminRoutes(r *gin.RouterGroup, adminController *controllers.AdminController, newsController *controllers.NewsController, reportController *controllers.ReportController) {
	// News management
	r.POST("/news", newsController.CreateNewsArticle)
	r.PUT("/news/:id", newsController.UpdateNewsArticle)
	r.DELETE("/news/:id", newsController.DeleteNewsArticle)

	// User listing
	r.GET("/users", adminController.GetAllUsers)

	// Audit trail
	r.GET("/logs", adminController.GetAdminLogs)

	// Report moderation
	reports := r.Group("/reports")
	{
		reports.PUT("/verify/:id", reportController.VerifyReport)
		reports.PUT("/reject/:id", reportController.RejectReport)
	}
}
