package utils

import (
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/civicwatch/api-go/models"
)

// AccessTokenTTL is how long issued bearer tokens stay valid.
const AccessTokenTTL = 7 * 24 * time.Hour

// JWTSecret returns the HMAC signing key from the environment.
func JWTSecret() []byte {
	return []byte(os.Getenv("JWT_SECRET"))
}

// GenerateAccessToken signs a bearer token for the given user. The token
// carries only the user id and role flag; the auth middleware re-resolves the
// user row on every request, so a role change takes effect on the next call
// without reissuing tokens.
func GenerateAccessToken(user *models.User) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  user.ID,
		"is_admin": user.IsAdmin,
		"exp":      time.Now().Add(AccessTokenTTL).Unix(),
	})
	return token.SignedString(JWTSecret())
}
