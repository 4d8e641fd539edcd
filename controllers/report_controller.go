package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/civicwatch/api-go/logger"
	"github.com/civicwatch/api-go/models"
	"github.com/civicwatch/api-go/utils"
)

type ReportController struct {
	DB *gorm.DB
}

type CreateReportRequest struct {
	Title       string  `json:"title" binding:"required,min=3,max=200"`
	Description string  `json:"description" binding:"required,min=10"`
	Location    *string `json:"location" binding:"omitempty,max=200"`
	IsAnonymous bool    `json:"is_anonymous"`
	PhotoURL    *string `json:"photo_url" binding:"omitempty,url"`
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{DB: db}
}

// CreateReport godoc
// @Summary Submit a new incident report
// @Description Creates a report owned by the authenticated user with status Pending
// @Tags reports
// @Accept json
// @Produce json
// @Param report body CreateReportRequest true "Report submission"
// @Success 201 {object} models.Report
// @Router /reports [post]
func (rc *ReportController) CreateReport(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	var req CreateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.FormatValidationErrors(err))
		return
	}

	report := models.Report{
		Title:          req.Title,
		Description:    req.Description,
		Location:       req.Location,
		IsAnonymous:    req.IsAnonymous,
		PhotoURL:       req.PhotoURL,
		Status:         models.ReportStatusPending,
		DateOfIncident: time.Now(),
		UserID:         user.ID,
	}

	if err := rc.DB.Create(&report).Error; err != nil {
		logger.Error().Err(err).Msg("failed to create report")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create report"})
		return
	}

	c.JSON(http.StatusCreated, report)
}

// GetReports godoc
// @Summary List all reports
// @Description Returns every report ordered by incident date descending, newest first
// @Tags reports
// @Produce json
// @Success 200 {array} models.Report
// @Router /reports [get]
func (rc *ReportController) GetReports(c *gin.Context) {
	reports := []models.Report{}
	if err := rc.DB.Order("date_of_incident desc").Find(&reports).Error; err != nil {
		logger.Error().Err(err).Msg("failed to fetch reports")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reports"})
		return
	}

	c.JSON(http.StatusOK, reports)
}

// GetMyReports godoc
// @Summary List the current user's reports
// @Tags reports
// @Produce json
// @Success 200 {array} models.Report
// @Router /my_reports [get]
func (rc *ReportController) GetMyReports(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	reports := []models.Report{}
	if err := rc.DB.Where("user_id = ?", user.ID).Order("date_of_incident desc").Find(&reports).Error; err != nil {
		logger.Error().Err(err).Msg("failed to fetch user reports")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reports"})
		return
	}

	c.JSON(http.StatusOK, reports)
}

// VerifyReport godoc
// @Summary Verify a report
// @Tags admin
// @Produce json
// @Param id path integer true "Report ID"
// @Success 200 {object} map[string]interface{}
// @Router /admin/reports/verify/{id} [put]
func (rc *ReportController) VerifyReport(c *gin.Context) {
	rc.moderateReport(c, models.ReportStatusVerified)
}

// RejectReport godoc
// @Summary Reject a report
// @Tags admin
// @Produce json
// @Param id path integer true "Report ID"
// @Success 200 {object} map[string]interface{}
// @Router /admin/reports/reject/{id} [put]
func (rc *ReportController) RejectReport(c *gin.Context) {
	rc.moderateReport(c, models.ReportStatusRejected)
}

// moderateReport applies a status transition and its audit entry in one
// transaction. Re-applying the same status still appends a new log entry.
func (rc *ReportController) moderateReport(c *gin.Context, status string) {
	admin := utils.GetUser(c)
	if admin == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Report not found"})
		return
	}

	var report models.Report
	if err := rc.DB.First(&report, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Report not found"})
		return
	}

	tx := rc.DB.Begin()

	if err := tx.Model(&report).Update("status", status).Error; err != nil {
		tx.Rollback()
		logger.Error().Err(err).Uint("report_id", report.ID).Msg("failed to update report status")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update report"})
		return
	}

	log := models.AdminLog{
		AdminID: admin.ID,
		Action:  fmt.Sprintf("%s report ID %d: %s", status, id, report.Title),
	}
	if err := tx.Create(&log).Error; err != nil {
		tx.Rollback()
		logger.Error().Err(err).Uint("report_id", report.ID).Msg("failed to write admin log")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update report"})
		return
	}

	if err := tx.Commit().Error; err != nil {
		logger.Error().Err(err).Uint("report_id", report.ID).Msg("failed to commit report moderation")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update report"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Report %d has been %s", id, strings.ToLower(status))})
}
