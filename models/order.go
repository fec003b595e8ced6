package models

import (
	"time"

	"gorm.io/datatypes"
)

type OrderStatus string

const (
	// Submission only ever produces Pending; the later states are reached
	// through the admin status endpoint.
	OrderStatusPending   OrderStatus = "Pending"
	OrderStatusConfirmed OrderStatus = "Confirmed"
	OrderStatusDelivered OrderStatus = "Delivered"
	OrderStatusCancelled OrderStatus = "Cancelled"
)

// OrderLine is one entry of the items snapshot captured at submission
// time. Prices here are frozen copies; later catalog changes never touch
// a placed order.
type OrderLine struct {
	Type     string  `json:"type"`
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

type Order struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	UserID        uint           `gorm:"index;not null" json:"user_id"`
	Items         datatypes.JSON `gorm:"not null" json:"items"` // serialized []OrderLine
	TotalPrice    float64        `gorm:"not null" json:"total_price"`
	Status        OrderStatus    `gorm:"type:VARCHAR(20);default:'Pending'" json:"status"`
	PaymentMethod string         `json:"payment_method"`
	Location      string         `json:"location"`
	CreatedAt     time.Time      `json:"created_at"`
}
