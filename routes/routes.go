package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires the public auth
// routes, the session-gated pages, the /api endpoints and the
// API-key-gated admin surface.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	SetupAuthRoutes(r, db)

	SetupPageRoutes(r, db)

	SetupAPIRoutes(r, db)

	SetupAdminRoutes(r, db)
}
