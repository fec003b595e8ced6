package adminControllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/servease/servease-api/models"
	"github.com/servease/servease-api/uploads"
)

type ServiceItemInput struct {
	ItemName        string `json:"item_name" binding:"required"`
	ItemDescription string `json:"item_description"`
}

// POST /admin/services
// Multipart form: name and price required; category, discount,
// short_description, available_till (RFC3339) and image optional.
func CreateService(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.PostForm("name")
		priceStr := c.PostForm("price")
		if name == "" || priceStr == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name and price are required"})
			return
		}

		price, err := strconv.ParseFloat(priceStr, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price"})
			return
		}

		var discount float64
		if discountStr := c.PostForm("discount"); discountStr != "" {
			if d, parseErr := strconv.ParseFloat(discountStr, 64); parseErr == nil {
				discount = d
			} else {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid discount"})
				return
			}
		}

		var availableTill *time.Time
		if tillStr := c.PostForm("available_till"); tillStr != "" {
			till, parseErr := time.Parse(time.RFC3339, tillStr)
			if parseErr != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid available_till, expected RFC3339"})
				return
			}
			availableTill = &till
		}

		image := ""
		if file, fileErr := c.FormFile("image"); fileErr == nil {
			saved, saveErr := uploads.SaveImage(c, file, "service")
			if saveErr != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": saveErr.Error()})
				return
			}
			image = saved
		}

		service := models.Service{
			Name:             name,
			Category:         c.PostForm("category"),
			Price:            price,
			Discount:         discount,
			Image:            image,
			ShortDescription: c.PostForm("short_description"),
			AddedAt:          time.Now(),
			AvailableTill:    availableTill,
		}
		if err := db.Create(&service).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create service"})
			return
		}
		c.JSON(http.StatusCreated, service)
	}
}

// PUT /admin/services/:id
func UpdateService(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var service models.Service
		if err := db.First(&service, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Service not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}

		updates := make(map[string]interface{})
		if name := c.PostForm("name"); name != "" {
			updates["name"] = name
		}
		if category := c.PostForm("category"); category != "" {
			updates["category"] = category
		}
		if priceStr := c.PostForm("price"); priceStr != "" {
			price, err := strconv.ParseFloat(priceStr, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price"})
				return
			}
			updates["price"] = price
		}
		if discountStr := c.PostForm("discount"); discountStr != "" {
			discount, err := strconv.ParseFloat(discountStr, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid discount"})
				return
			}
			updates["discount"] = discount
		}
		if desc := c.PostForm("short_description"); desc != "" {
			updates["short_description"] = desc
		}
		if file, err := c.FormFile("image"); err == nil {
			saved, saveErr := uploads.SaveImage(c, file, "service")
			if saveErr != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": saveErr.Error()})
				return
			}
			updates["image"] = saved
		}

		if len(updates) > 0 {
			if err := db.Model(&service).Updates(updates).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update service"})
				return
			}
		}
		c.JSON(http.StatusOK, service)
	}
}

// DELETE /admin/services/:id
// Service items go with their parent, inside one transaction.
func DeleteService(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var service models.Service
		if err := db.First(&service, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Service not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("service_id = ?", service.ID).Delete(&models.ServiceItem{}).Error; err != nil {
				return err
			}
			return tx.Delete(&service).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete service"})
			return
		}

		if err := uploads.Remove(service.Image); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete image"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Service deleted"})
	}
}

// POST /admin/services/:id/items
func AddServiceItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var service models.Service
		if err := db.First(&service, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Service not found"})
			return
		}

		var input ServiceItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		item := models.ServiceItem{
			ServiceID:       service.ID,
			ItemName:        input.ItemName,
			ItemDescription: input.ItemDescription,
		}
		if err := db.Create(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create service item"})
			return
		}
		c.JSON(http.StatusCreated, item)
	}
}

// DELETE /admin/service_items/:id
func DeleteServiceItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := db.Where("id = ?", c.Param("id")).Delete(&models.ServiceItem{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete service item"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Service item not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Service item deleted"})
	}
}
