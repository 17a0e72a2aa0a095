/* JWT token issuing and validation helpers */

package auth

import (
	"log"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

var jwtKey = []byte("default_secret_key")

// SetKey installs the signing key from configuration. Must run before
// any token is issued. An empty secret keeps the default key so a bare
// development setup still works, with a loud warning.
func SetKey(secret string) {
	if secret == "" {
		log.Println("Warning: JWT_SECRET_KEY is not set. Using default key.")
		return
	}
	jwtKey = []byte(secret)
}

// Claims carried in every token: enough to authorize requests and
// resolve the sender's display identity without a database lookup.
type Claims struct {
	UserID  int    `json:"user_id"`
	Email   string `json:"email"`
	IsStaff bool   `json:"is_staff"`
	jwt.RegisteredClaims
}

// GenerateToken issues a signed token for the user, valid for 24 hours.
func GenerateToken(userID int, email string, isStaff bool) (string, error) {
	expirationTime := time.Now().Add(24 * time.Hour)
	claims := &Claims{
		UserID:  userID,
		Email:   email,
		IsStaff: isStaff,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "SeniorCompanion-api",
			Subject:   "user_auth_token",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(jwtKey)
	if err != nil {
		return "", err
	}
	return tokenString, nil
}

// ValidateToken parses and verifies a token string.
func ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return jwtKey, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}
