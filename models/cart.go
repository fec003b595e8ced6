package models

import (
	"time"

	"gorm.io/gorm"
)

type CartItemType string

const (
	CartItemService CartItemType = "service"
	CartItemMenu    CartItemType = "menu"
)

// CartItem is one pending purchase line. The ItemType/ItemID pair is a
// tagged reference: a line points at exactly one service or one menu row,
// never both.
type CartItem struct {
	ID       uint         `gorm:"primaryKey" json:"id"`
	UserID   uint         `gorm:"index;not null" json:"user_id"`
	ItemType CartItemType `gorm:"type:VARCHAR(10);not null" json:"item_type"`
	ItemID   uint         `gorm:"not null" json:"item_id"`
	Quantity int          `gorm:"default:1" json:"quantity"`
	AddedAt  time.Time    `json:"added_at"`
}

// ResolveLine looks up the referenced service or menu row and returns its
// name and discounted unit price. ok is false when the referenced row no
// longer exists; callers skip such lines in totals and order snapshots.
func (ci *CartItem) ResolveLine(db *gorm.DB) (name string, unitPrice float64, ok bool) {
	switch ci.ItemType {
	case CartItemService:
		var s Service
		if err := db.First(&s, ci.ItemID).Error; err != nil {
			return "", 0, false
		}
		return s.Name, s.Price - s.Discount, true
	case CartItemMenu:
		var m Menu
		if err := db.First(&m, ci.ItemID).Error; err != nil {
			return "", 0, false
		}
		return m.Name, m.Price - m.Discount, true
	}
	return "", 0, false
}
