package controllers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/civicwatch/api-go/models"
)

// ---- Register ---------------------------------------------------------------

func TestRegister_Success(t *testing.T) {
	db := setupTestDB(t)
	r := newTestRouter(db)

	w := doRequest(r, http.MethodPost, "/auth/register", "", map[string]interface{}{
		"username": "newuser",
		"email":    "newuser@example.com",
		"password": "secret123",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.NotContains(t, w.Body.String(), "password")

	var stored models.User
	require.NoError(t, db.Where("username = ?", "newuser").First(&stored).Error)
	assert.False(t, stored.IsAdmin, "registration must never create administrators")
	assert.NotEqual(t, "secret123", stored.Password, "password must be stored hashed")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("secret123")))
}

func TestRegister_DuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	r := newTestRouter(db)
	createTestUser(t, db, "existing", false)

	w := doRequest(r, http.MethodPost, "/auth/register", "", map[string]interface{}{
		"username": "someoneelse",
		"email":    "existing@example.com",
		"password": "secret123",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)

	resp := decodeBody(t, w)
	assert.Equal(t, "Username or email already exists", resp["error"])
}

func TestRegister_ValidationErrors(t *testing.T) {
	db := setupTestDB(t)
	r := newTestRouter(db)

	w := doRequest(r, http.MethodPost, "/auth/register", "", map[string]interface{}{
		"username": "ab",
		"email":    "not-an-email",
		"password": "123",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)

	resp := decodeErrors(t, w)
	assert.Equal(t, []string{"Shorter than minimum length 3."}, resp["username"])
	assert.Equal(t, []string{"Not a valid email address."}, resp["email"])
	assert.Equal(t, []string{"Shorter than minimum length 6."}, resp["password"])

	var count int64
	db.Model(&models.User{}).Count(&count)
	assert.Zero(t, count)
}

// ---- Login ------------------------------------------------------------------

func TestLogin_Success(t *testing.T) {
	db := setupTestDB(t)
	r := newTestRouter(db)
	user := createTestUser(t, db, "citizen", false)

	w := doRequest(r, http.MethodPost, "/auth/login", "", map[string]interface{}{
		"email":    user.Email,
		"password": "password123",
	})

	assert.Equal(t, http.StatusOK, w.Code)

	resp := decodeBody(t, w)
	assert.Equal(t, "Bearer", resp["token_type"])
	token, ok := resp["access_token"].(string)
	require.True(t, ok)
	require.NotEmpty(t, token)

	// The issued token must be accepted by the auth middleware.
	profile := doRequest(r, http.MethodGet, "/profile", "Bearer "+token, nil)
	assert.Equal(t, http.StatusOK, profile.Code)
}

func TestLogin_WrongPassword(t *testing.T) {
	db := setupTestDB(t)
	r := newTestRouter(db)
	user := createTestUser(t, db, "citizen", false)

	w := doRequest(r, http.MethodPost, "/auth/login", "", map[string]interface{}{
		"email":    user.Email,
		"password": "wrong-password",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	resp := decodeBody(t, w)
	assert.Equal(t, "Invalid credentials", resp["error"])
}

func TestLogin_UnknownEmail(t *testing.T) {
	db := setupTestDB(t)
	r := newTestRouter(db)

	w := doRequest(r, http.MethodPost, "/auth/login", "", map[string]interface{}{
		"email":    "ghost@example.com",
		"password": "password123",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// ---- GetProfile -------------------------------------------------------------

func TestGetProfile_ReturnsCurrentUser(t *testing.T) {
	db := setupTestDB(t)
	r := newTestRouter(db)
	user := createTestUser(t, db, "citizen", false)

	w := doRequest(r, http.MethodGet, "/profile", authHeader(t, user), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	resp := decodeBody(t, w)
	userBody, ok := resp["user"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "citizen", userBody["username"])
	assert.NotContains(t, w.Body.String(), user.Password, "password hash must never be serialized")
}

func TestGetProfile_RequiresAuth(t *testing.T) {
	db := setupTestDB(t)
	r := newTestRouter(db)

	w := doRequest(r, http.MethodGet, "/profile", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
