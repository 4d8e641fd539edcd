package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/civicwatch/api-go/controllers"
)

func SetupUploadRoutes(r *gin.RouterGroup, uploadController *controllers.UploadController) {
	uploads := r.Group("/uploads")
	{
		uploads.POST("/report-photo", uploadController.GetReportPhotoUploadURL)
	}
}
