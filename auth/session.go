package auth

import (
	"errors"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/servease/servease-api/models"
)

// SessionCookie carries the signed session token for browser clients.
const SessionCookie = "session_token"

const sessionTTL = 7 * 24 * time.Hour

// SessionClaims is the per-request identity carried by every
// authenticated route: user id plus the display fields the pages show.
type SessionClaims struct {
	UserID   uint   `json:"user_id"`
	UserName string `json:"user_name"`
	UserDP   string `json:"user_dp"`
	jwt.RegisteredClaims
}

func jwtSecret() []byte {
	return []byte(os.Getenv("JWT_SECRET"))
}

// IssueSession signs a session token for the given user.
func IssueSession(user *models.User) (string, error) {
	claims := SessionClaims{
		UserID:   user.ID,
		UserName: user.Name,
		UserDP:   user.DPFilename,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(sessionTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(jwtSecret())
}

// ParseSession validates a session token and returns its claims.
func ParseSession(tokenString string) (*SessionClaims, error) {
	if tokenString == "" {
		return nil, errors.New("missing session token")
	}
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return jwtSecret(), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid or expired session")
	}
	claims, ok := token.Claims.(*SessionClaims)
	if !ok {
		return nil, errors.New("invalid session claims")
	}
	return claims, nil
}

// TokenFromRequest reads the session token from the cookie, falling back
// to the Authorization header for non-browser clients.
func TokenFromRequest(c *gin.Context) string {
	if token, err := c.Cookie(SessionCookie); err == nil && token != "" {
		return token
	}
	return c.GetHeader("Authorization")
}

func SetSessionCookie(c *gin.Context, token string) {
	c.SetCookie(SessionCookie, token, int(sessionTTL.Seconds()), "/", "", false, true)
}

func ClearSessionCookie(c *gin.Context) {
	c.SetCookie(SessionCookie, "", -1, "/", "", false, true)
}
