package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/civicwatch/api-go/models"
)

type HomeController struct {
	DB *gorm.DB
}

func NewHomeController(db *gorm.DB) *HomeController {
	return &HomeController{DB: db}
}

// HomeSummary returns headline counts for the landing page.
func (hc *HomeController) HomeSummary(c *gin.Context) {
	var reportsCount int64
	if err := hc.DB.Model(&models.Report{}).Count(&reportsCount).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An internal error occurred"})
		return
	}

	var newsCount int64
	if err := hc.DB.Model(&models.NewsArticle{}).Count(&newsCount).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An internal error occurred"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"reportsCount": reportsCount,
		"newsCount":    newsCount,
	})
}
