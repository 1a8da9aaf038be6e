package utils

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/dgrijalva/jwt-go"
)

// JwtKey is loaded from JWT_SECRET at startup.
var JwtKey = []byte("your_secret_key")

// Claims carries the authenticated account through the request context.
// Role is one of "buyer", "seller" or "admin".
type Claims struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.StandardClaims
}

// GenerateJWT issues a signed token for an authenticated account.
func GenerateJWT(id, email, role string) (string, error) {
	expirationTime := time.Now().Add(24 * time.Hour)
	claims := &Claims{
		ID:    id,
		Email: email,
		Role:  role,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: expirationTime.Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(JwtKey)
}

// GenerateSecureToken returns a random token for email verification
// and password-reset links.
func GenerateSecureToken() string {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand failing means the platform RNG is broken.
		panic(err)
	}
	return hex.EncodeToString(buf)
}
