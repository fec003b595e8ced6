package catalogControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/servease/servease-api/models"
)

// ListServices returns the whole service catalog with child items.
func ListServices(db *gorm.DB) ([]models.Service, error) {
	var services []models.Service
	err := db.Preload("Items").Find(&services).Error
	return services, err
}

// ListMenus returns the whole menu catalog.
func ListMenus(db *gorm.DB) ([]models.Menu, error) {
	var menus []models.Menu
	err := db.Find(&menus).Error
	return menus, err
}

// GetService fetches one service with its items.
func GetService(db *gorm.DB, id string) (*models.Service, error) {
	var service models.Service
	if err := db.Preload("Items").First(&service, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &service, nil
}

// GET /service/:id
func ServiceDetails(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		service, err := GetService(db, c.Param("id"))
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Service not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch service"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"page": "service_details", "service": service})
	}
}
