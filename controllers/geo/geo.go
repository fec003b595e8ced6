package geoControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GET /api/get_location
// A production build would ask a geolocation provider here.
func GetLocation() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"success":  true,
			"location": "Demo Location, City, State",
		})
	}
}
