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

// POST /admin/menus
func CreateMenu(db *gorm.DB) gin.HandlerFunc {
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

		image := ""
		if file, fileErr := c.FormFile("image"); fileErr == nil {
			saved, saveErr := uploads.SaveImage(c, file, "menu")
			if saveErr != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": saveErr.Error()})
				return
			}
			image = saved
		}

		menu := models.Menu{
			Name:        name,
			Image:       image,
			Description: c.PostForm("description"),
			Price:       price,
			Discount:    discount,
			AddedAt:     time.Now(),
		}
		if err := db.Create(&menu).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create menu"})
			return
		}
		c.JSON(http.StatusCreated, menu)
	}
}

// PUT /admin/menus/:id
func UpdateMenu(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var menu models.Menu
		if err := db.First(&menu, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Menu not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}

		updates := make(map[string]interface{})
		if name := c.PostForm("name"); name != "" {
			updates["name"] = name
		}
		if desc := c.PostForm("description"); desc != "" {
			updates["description"] = desc
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
		if file, err := c.FormFile("image"); err == nil {
			saved, saveErr := uploads.SaveImage(c, file, "menu")
			if saveErr != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": saveErr.Error()})
				return
			}
			updates["image"] = saved
		}

		if len(updates) > 0 {
			if err := db.Model(&menu).Updates(updates).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update menu"})
				return
			}
		}
		c.JSON(http.StatusOK, menu)
	}
}

// DELETE /admin/menus/:id
func DeleteMenu(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var menu models.Menu
		if err := db.First(&menu, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Menu not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}

		if err := db.Delete(&menu).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete menu"})
			return
		}
		if err := uploads.Remove(menu.Image); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete image"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Menu deleted"})
	}
}
