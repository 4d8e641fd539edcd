package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/civicwatch/api-go/logger"
	"github.com/civicwatch/api-go/models"
	"github.com/civicwatch/api-go/utils"
)

type NewsController struct {
	DB *gorm.DB
}

type CreateNewsRequest struct {
	Title        string  `json:"title" binding:"required,min=3,max=200"`
	Content      string  `json:"content" binding:"required,min=10"`
	Source       *string `json:"source" binding:"omitempty,max=100"`
	ReadMoreLink *string `json:"read_more_link" binding:"omitempty,url"`
}

type UpdateNewsRequest struct {
	Title        *string `json:"title" binding:"omitempty,min=3,max=200"`
	Content      *string `json:"content" binding:"omitempty,min=10"`
	Source       *string `json:"source" binding:"omitempty,max=100"`
	ReadMoreLink *string `json:"read_more_link" binding:"omitempty,url"`
}

func NewNewsController(db *gorm.DB) *NewsController {
	return &NewsController{DB: db}
}

// GetNewsArticles godoc
// @Summary List published news articles
// @Description Returns every article ordered by publication date descending, newest first
// @Tags news
// @Produce json
// @Success 200 {array} models.NewsArticle
// @Router /news [get]
func (nc *NewsController) GetNewsArticles(c *gin.Context) {
	articles := []models.NewsArticle{}
	if err := nc.DB.Order("published_date desc").Find(&articles).Error; err != nil {
		logger.Error().Err(err).Msg("failed to fetch news articles")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch news articles"})
		return
	}

	c.JSON(http.StatusOK, articles)
}

// CreateNewsArticle godoc
// @Summary Publish a news article
// @Tags admin
// @Accept json
// @Produce json
// @Param article body CreateNewsRequest true "Article content"
// @Success 201 {object} models.NewsArticle
// @Router /admin/news [post]
func (nc *NewsController) CreateNewsArticle(c *gin.Context) {
	admin := utils.GetUser(c)
	if admin == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	var req CreateNewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.FormatValidationErrors(err))
		return
	}

	article := models.NewsArticle{
		Title:         req.Title,
		Content:       req.Content,
		Source:        req.Source,
		ReadMoreLink:  req.ReadMoreLink,
		PublishedDate: time.Now(),
		AuthorID:      admin.ID,
	}

	tx := nc.DB.Begin()

	if err := tx.Create(&article).Error; err != nil {
		tx.Rollback()
		logger.Error().Err(err).Msg("failed to create news article")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create news article"})
		return
	}

	log := models.AdminLog{
		AdminID: admin.ID,
		Action:  fmt.Sprintf("Created news article: %s", article.Title),
	}
	if err := tx.Create(&log).Error; err != nil {
		tx.Rollback()
		logger.Error().Err(err).Msg("failed to write admin log")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create news article"})
		return
	}

	if err := tx.Commit().Error; err != nil {
		logger.Error().Err(err).Msg("failed to commit news article")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create news article"})
		return
	}

	c.JSON(http.StatusCreated, article)
}

// UpdateNewsArticle godoc
// @Summary Update a news article
// @Description Merges the supplied fields over the stored article. Omitted fields keep their values.
// @Tags admin
// @Accept json
// @Produce json
// @Param id path integer true "Article ID"
// @Param article body UpdateNewsRequest true "Fields to update"
// @Success 200 {object} models.NewsArticle
// @Router /admin/news/{id} [put]
func (nc *NewsController) UpdateNewsArticle(c *gin.Context) {
	admin := utils.GetUser(c)
	if admin == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "News article not found"})
		return
	}

	var article models.NewsArticle
	if err := nc.DB.First(&article, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "News article not found"})
		return
	}

	var req UpdateNewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.FormatValidationErrors(err))
		return
	}

	if req.Title != nil {
		article.Title = *req.Title
	}
	if req.Content != nil {
		article.Content = *req.Content
	}
	if req.Source != nil {
		article.Source = req.Source
	}
	if req.ReadMoreLink != nil {
		article.ReadMoreLink = req.ReadMoreLink
	}

	tx := nc.DB.Begin()

	if err := tx.Save(&article).Error; err != nil {
		tx.Rollback()
		logger.Error().Err(err).Uint("article_id", article.ID).Msg("failed to update news article")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update news article"})
		return
	}

	log := models.AdminLog{
		AdminID: admin.ID,
		Action:  fmt.Sprintf("Updated news article ID %d: %s", id, article.Title),
	}
	if err := tx.Create(&log).Error; err != nil {
		tx.Rollback()
		logger.Error().Err(err).Uint("article_id", article.ID).Msg("failed to write admin log")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update news article"})
		return
	}

	if err := tx.Commit().Error; err != nil {
		logger.Error().Err(err).Uint("article_id", article.ID).Msg("failed to commit news article update")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update news article"})
		return
	}

	c.JSON(http.StatusOK, article)
}

// DeleteNewsArticle godoc
// @Summary Delete a news article
// @Tags admin
// @Produce json
// @Param id path integer true "Article ID"
// @Success 200 {object} map[string]interface{}
// @Router /admin/news/{id} [delete]
func (nc *NewsController) DeleteNewsArticle(c *gin.Context) {
	admin := utils.GetUser(c)
	if admin == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "News article not found"})
		return
	}

	var article models.NewsArticle
	if err := nc.DB.First(&article, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "News article not found"})
		return
	}

	// The title is needed for the log and response after the row is gone.
	articleTitle := article.Title

	tx := nc.DB.Begin()

	if err := tx.Delete(&article).Error; err != nil {
		tx.Rollback()
		logger.Error().Err(err).Uint("article_id", article.ID).Msg("failed to delete news article")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete news article"})
		return
	}

	log := models.AdminLog{
		AdminID: admin.ID,
		Action:  fmt.Sprintf("Deleted news article ID %d: %s", id, articleTitle),
	}
	if err := tx.Create(&log).Error; err != nil {
		tx.Rollback()
		logger.Error().Err(err).Uint("article_id", article.ID).Msg("failed to write admin log")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete news article"})
		return
	}

	if err := tx.Commit().Error; err != nil {
		logger.Error().Err(err).Uint("article_id", article.ID).Msg("failed to commit news article deletion")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete news article"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("News article '%s' has been deleted", articleTitle)})
}
