package controllers

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/civicwatch/api-go/middleware"
)

func setStorageEnv(t *testing.T) {
	t.Helper()

	t.Setenv("STORAGE_ENDPOINT", "https://storage.example.com")
	t.Setenv("STORAGE_ACCESS_KEY_ID", "test-access-key")
	t.Setenv("STORAGE_SECRET_ACCESS_KEY", "test-secret-key")
	t.Setenv("STORAGE_BUCKET", "civicwatch-media")
	t.Setenv("STORAGE_PUBLIC_URL", "https://media.example.com")
}

func newUploadRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	uploadController := NewUploadController()

	protected := r.Group("")
	protected.Use(middleware.AuthRequired(db))
	protected.POST("/uploads/report-photo", uploadController.GetReportPhotoUploadURL)

	return r
}

func TestGetReportPhotoUploadURL_Success(t *testing.T) {
	setStorageEnv(t)
	db := setupTestDB(t)
	r := newUploadRouter(db)
	user := createTestUser(t, db, "citizen", false)

	w := doRequest(r, http.MethodPost, "/uploads/report-photo", authHeader(t, user), map[string]interface{}{
		"file_name":    "pothole.jpg",
		"content_type": "image/jpeg",
		"file_size":    1024,
	})

	assert.Equal(t, http.StatusOK, w.Code)

	resp := decodeBody(t, w)
	assert.Equal(t, true, resp["success"])

	data, ok := resp["data"].(map[string]interface{})
	require.True(t, ok)

	key, ok := data["key"].(string)
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(key, fmt.Sprintf("reports/%d/", user.ID)), "key %q must be namespaced by user", key)
	assert.True(t, strings.HasSuffix(key, ".jpg"))

	assert.Equal(t, "https://media.example.com/"+key, data["file_url"])
	assert.Contains(t, data["upload_url"], "X-Amz-Signature", "upload URL must be presigned")
	assert.EqualValues(t, 1800, data["expires_in"])
}

func TestGetReportPhotoUploadURL_RejectsNonImage(t *testing.T) {
	setStorageEnv(t)
	db := setupTestDB(t)
	r := newUploadRouter(db)
	user := createTestUser(t, db, "citizen", false)

	w := doRequest(r, http.MethodPost, "/uploads/report-photo", authHeader(t, user), map[string]interface{}{
		"file_name":    "report.pdf",
		"content_type": "application/pdf",
		"file_size":    1024,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid photo content type")
}

func TestGetReportPhotoUploadURL_RejectsOversizedFile(t *testing.T) {
	setStorageEnv(t)
	db := setupTestDB(t)
	r := newUploadRouter(db)
	user := createTestUser(t, db, "citizen", false)

	w := doRequest(r, http.MethodPost, "/uploads/report-photo", authHeader(t, user), map[string]interface{}{
		"file_name":    "huge.png",
		"content_type": "image/png",
		"file_size":    11 * 1024 * 1024,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "File size exceeds limit")
}

func TestGetReportPhotoUploadURL_ValidationError(t *testing.T) {
	setStorageEnv(t)
	db := setupTestDB(t)
	r := newUploadRouter(db)
	user := createTestUser(t, db, "citizen", false)

	w := doRequest(r, http.MethodPost, "/uploads/report-photo", authHeader(t, user), map[string]interface{}{
		"file_name": "pothole.jpg",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)

	resp := decodeErrors(t, w)
	assert.Equal(t, []string{"Missing data for required field."}, resp["content_type"])
	assert.Equal(t, []string{"Missing data for required field."}, resp["file_size"])
}

func TestGetReportPhotoUploadURL_RequiresAuth(t *testing.T) {
	setStorageEnv(t)
	db := setupTestDB(t)
	r := newUploadRouter(db)

	w := doRequest(r, http.MethodPost, "/uploads/report-photo", "", map[string]interface{}{
		"file_name":    "pothole.jpg",
		"content_type": "image/jpeg",
		"file_size":    1024,
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
