package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/servease/servease-api/auth"
)

// RequireSession gates browser page routes. Unauthenticated callers are
// redirected to the login entry point before any data access happens.
func RequireSession(c *gin.Context) {
	claims, err := auth.ParseSession(auth.TokenFromRequest(c))
	if err != nil {
		c.Redirect(http.StatusFound, "/login")
		c.Abort()
		return
	}
	setIdentity(c, claims)
	c.Next()
}

// RequireSessionAPI gates /api routes, answering JSON instead of
// redirecting.
func RequireSessionAPI(c *gin.Context) {
	claims, err := auth.ParseSession(auth.TokenFromRequest(c))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Not logged in"})
		c.Abort()
		return
	}
	setIdentity(c, claims)
	c.Next()
}

func setIdentity(c *gin.Context, claims *auth.SessionClaims) {
	c.Set("user_id", claims.UserID)
	c.Set("user_name", claims.UserName)
	c.Set("user_dp", claims.UserDP)
}
