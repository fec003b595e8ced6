package messageControllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/servease/servease-api/models"
	"github.com/servease/servease-api/uploads"
)

// ActiveMessages returns the dashboard feed, newest first.
func ActiveMessages(db *gorm.DB) ([]models.Message, error) {
	var messages []models.Message
	err := db.Where("is_active = ?", true).Order("sent_time DESC").Find(&messages).Error
	return messages, err
}

// GET /admin/messages
func GetMessages(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var messages []models.Message
		if err := db.Order("sent_time DESC").Find(&messages).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get messages"})
			return
		}
		c.JSON(http.StatusOK, messages)
	}
}

// POST /admin/messages
func CreateMessage(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		description := c.PostForm("description")
		if description == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "description is required"})
			return
		}

		image := ""
		if file, err := c.FormFile("image"); err == nil {
			saved, saveErr := uploads.SaveImage(c, file, "msg")
			if saveErr != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": saveErr.Error()})
				return
			}
			image = saved
		}

		message := models.Message{
			Image:       image,
			Description: description,
			SentTime:    time.Now(),
			IsActive:    true,
		}
		if err := db.Create(&message).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "DB save failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Message created", "data": message})
	}
}

// PUT /admin/messages/:id/deactivate
// Deactivated messages drop off the dashboard feed but stay in the table.
func DeactivateMessage(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var message models.Message
		if err := db.First(&message, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Message not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}

		if err := db.Model(&message).Update("is_active", false).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to deactivate message"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Message deactivated"})
	}
}

// DELETE /admin/messages/:id
func DeleteMessage(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var message models.Message
		if err := db.First(&message, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Message not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}

		if err := uploads.Remove(message.Image); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete image"})
			return
		}
		if err := db.Delete(&message).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete from database"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Message deleted"})
	}
}
