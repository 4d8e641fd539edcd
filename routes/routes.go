package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/civicwatch/api-go/controllers"
	"github.com/civicwatch/api-go/middleware"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	// Initialize controllers
	authController := controllers.NewAuthController(db)
	homeController := controllers.NewHomeController(db)
	reportController := controllers.NewReportController(db)
	newsController := controllers.NewNewsController(db)
	adminController := controllers.NewAdminController(db)
	uploadController := controllers.NewUploadController()

	// Public routes
	r.GET("/home_summary", homeController.HomeSummary)
	r.GET("/news", newsController.GetNewsArticles)

	auth := r.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
	}

	// Authenticated routes
	protected := r.Group("")
	protected.Use(middleware.AuthRequired(db))
	{
		protected.GET("/profile", authController.GetProfile)

		SetupReportRoutes(protected, reportController)
		SetupUploadRoutes(protected, uploadController)
	}

	// Administrator routes
	admin := r.Group("/admin")
	admin.Use(middleware.AuthRequired(db), middleware.AdminRequired())
	{
		SetupAdminRoutes(admin, adminController, newsController, reportController)
	}
}
