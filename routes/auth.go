package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/servease/servease-api/auth"
)

// SetupAuthRoutes registers the public entry points.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB) {
	r.GET("/", rootRedirect)

	r.GET("/login", auth.LoginForm())
	r.POST("/login", auth.Login(db))

	r.GET("/register", auth.RegisterForm())
	r.POST("/register", auth.Register(db))

	r.GET("/logout", auth.Logout())
}

// rootRedirect sends the caller to the dashboard or the login entry
// point depending on session presence.
func rootRedirect(c *gin.Context) {
	if _, err := auth.ParseSession(auth.TokenFromRequest(c)); err == nil {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}
	c.Redirect(http.StatusFound, "/login")
}
