package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/civicwatch/api-go/logger"
	"github.com/civicwatch/api-go/models"
)

type AdminController struct {
	DB *gorm.DB
}

func NewAdminController(db *gorm.DB) *AdminController {
	return &AdminController{DB: db}
}

// GetAllUsers returns every registered user. No pagination.
func (ac *AdminController) GetAllUsers(c *gin.Context) {
	users := []models.User{}
	if err := ac.DB.Find(&users).Error; err != nil {
		logger.Error().Err(err).Msg("failed to fetch users")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
		return
	}

	c.JSON(http.StatusOK, users)
}

// GetAdminLogs returns the audit trail, newest entries first.
func (ac *AdminController) GetAdminLogs(c *gin.Context) {
	logs := []models.AdminLog{}
	if err := ac.DB.Order("created_at desc").Find(&logs).Error; err != nil {
		logger.Error().Err(err).Msg("failed to fetch admin logs")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch admin logs"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    logs,
	})
}
