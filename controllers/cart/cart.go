package cartControllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/servease/servease-api/models"
)

type AddToCartInput struct {
	Type string `json:"type" binding:"required,oneof=service menu"`
	ID   uint   `json:"id" binding:"required"`
}

type UpdateCartInput struct {
	CartID uint   `json:"cart_id" binding:"required"`
	Action string `json:"action" binding:"required,oneof=increase decrease remove"`
}

// CartLine is a cart row joined with its resolved catalog data.
type CartLine struct {
	models.CartItem
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	LineTotal float64 `json:"line_total"`
}

// CartLines returns the user's cart with resolved names and unit prices
// (price minus discount) plus the running total. Lines whose referenced
// catalog row was deleted are skipped.
func CartLines(db *gorm.DB, userID uint) ([]CartLine, float64, error) {
	var items []models.CartItem
	if err := db.Where("user_id = ?", userID).Order("added_at").Find(&items).Error; err != nil {
		return nil, 0, err
	}

	lines := make([]CartLine, 0, len(items))
	var total float64
	for _, item := range items {
		name, unit, ok := item.ResolveLine(db)
		if !ok {
			continue
		}
		lineTotal := unit * float64(item.Quantity)
		lines = append(lines, CartLine{
			CartItem:  item,
			Name:      name,
			UnitPrice: unit,
			LineTotal: lineTotal,
		})
		total += lineTotal
	}
	return lines, total, nil
}

// POST /api/add_to_cart
func AddToCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("user_id")

		var input AddToCartInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid input: " + err.Error()})
			return
		}

		itemType := models.CartItemType(input.Type)
		if !referencedItemExists(db, itemType, input.ID) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Item does not exist"})
			return
		}

		// Every add creates a fresh line; duplicate lines for the same
		// item stay separate rather than merging.
		line := models.CartItem{
			UserID:   userID,
			ItemType: itemType,
			ItemID:   input.ID,
			Quantity: 1,
			AddedAt:  time.Now(),
		}
		if err := db.Create(&line).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to add item to cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

// POST /api/update_cart
func UpdateCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("user_id")

		var input UpdateCartInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid input: " + err.Error()})
			return
		}

		// The ownership check runs before any mutation. A missing row and
		// a row owned by someone else get the same answer.
		var line models.CartItem
		if err := db.First(&line, input.CartID).Error; err != nil || line.UserID != userID {
			c.JSON(http.StatusForbidden, gin.H{"success": false})
			return
		}

		var err error
		switch input.Action {
		case "increase":
			line.Quantity++
			err = db.Save(&line).Error
		case "decrease":
			line.Quantity--
			if line.Quantity <= 0 {
				// A line never stays visible at quantity zero.
				err = db.Delete(&line).Error
			} else {
				err = db.Save(&line).Error
			}
		case "remove":
			err = db.Delete(&line).Error
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

// GET /api/cart
func GetCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("user_id")

		lines, total, err := CartLines(db, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "items": lines, "total": total})
	}
}

func referencedItemExists(db *gorm.DB, itemType models.CartItemType, id uint) bool {
	var count int64
	switch itemType {
	case models.CartItemService:
		db.Model(&models.Service{}).Where("id = ?", id).Count(&count)
	case models.CartItemMenu:
		db.Model(&models.Menu{}).Where("id = ?", id).Count(&count)
	}
	return count > 0
}
