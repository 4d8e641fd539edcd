package controllers

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/civicwatch/api-go/config"
	"github.com/civicwatch/api-go/logger"
	"github.com/civicwatch/api-go/utils"
)

// UploadController hands out presigned PUT URLs for report evidence photos.
// Clients upload directly to the bucket and submit the resulting file URL as
// the report's photo_url; no file bytes pass through this service.
type UploadController struct {
	Client *s3.Client
	Config *config.StorageConfig
}

type ReportPhotoRequest struct {
	FileName    string `json:"file_name" binding:"required"`
	ContentType string `json:"content_type" binding:"required"`
	FileSize    int64  `json:"file_size" binding:"required"`
}

type PresignedURLResponse struct {
	UploadURL string `json:"upload_url"`
	FileURL   string `json:"file_url"`
	Key       string `json:"key"`
	ExpiresIn int    `json:"expires_in"`
}

const maxPhotoSize = 10 * 1024 * 1024

func NewUploadController() *UploadController {
	cfg := config.GetStorageConfig()

	client := s3.New(s3.Options{
		BaseEndpoint: aws.String(cfg.Endpoint),
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		),
		Region: cfg.Region,
	})

	return &UploadController{
		Client: client,
		Config: cfg,
	}
}

func (uc *UploadController) GetReportPhotoUploadURL(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	var req ReportPhotoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.FormatValidationErrors(err))
		return
	}

	if !isValidPhotoType(req.ContentType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid photo content type"})
		return
	}

	if req.FileSize > maxPhotoSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File size exceeds limit"})
		return
	}

	key := uc.generatePhotoKey(user.ID, req.FileName)

	uploadURL, err := uc.createPresignedURL(key, req.ContentType)
	if err != nil {
		logger.Error().Err(err).Str("key", key).Msg("failed to presign upload url")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create upload URL"})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Data: PresignedURLResponse{
			UploadURL: uploadURL,
			FileURL:   fmt.Sprintf("%s/%s", uc.Config.PublicURL, key),
			Key:       key,
			ExpiresIn: 1800,
		},
		Message: "Presigned URL generated successfully",
	})
}

func isValidPhotoType(contentType string) bool {
	validTypes := []string{
		"image/jpeg", "image/jpg", "image/png", "image/webp", "image/heic",
	}

	for _, validType := range validTypes {
		if contentType == validType {
			return true
		}
	}
	return false
}

func (uc *UploadController) generatePhotoKey(userID uint, fileName string) string {
	ext := filepath.Ext(fileName)
	return fmt.Sprintf("reports/%d/%d_%s%s", userID, time.Now().Unix(), uuid.New().String(), ext)
}

func (uc *UploadController) createPresignedURL(key, contentType string) (string, error) {
	input := &s3.PutObjectInput{
		Bucket:      aws.String(uc.Config.BucketName),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}

	presigner := s3.NewPresignClient(uc.Client)
	req, err := presigner.PresignPutObject(context.TODO(), input, func(opts *s3.PresignOptions) {
		opts.Expires = 30 * time.Minute
	})
	if err != nil {
		return "", err
	}

	return req.URL, nil
}
