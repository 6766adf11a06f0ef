package model

import (
	"time"

	"github.com/google/uuid"
)

type PurchaseStatus string

const (
	PurchaseStatusInCart    PurchaseStatus = "In cart"
	PurchaseStatusPurchased PurchaseStatus = "Purchased"
	PurchaseStatusRefunded  PurchaseStatus = "Refunded"
	PurchaseStatusShipped   PurchaseStatus = "Shipped"
	PurchaseStatusCancelled PurchaseStatus = "Cancelled"
	PurchaseStatusCompleted PurchaseStatus = "Completed"
)

// 注文の明細。total_amountは書き込み時点の quantity × product.price
type Purchase struct {
	ID          int64          `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID     int64          `gorm:"not null;index" json:"order_id"`
	ProductID   uuid.UUID      `gorm:"type:uuid;not null;index" json:"product_id"`
	UserID      int64          `gorm:"not null;index" json:"user_id"`
	Quantity    int64          `gorm:"not null" json:"quantity"`
	TotalAmount Money          `gorm:"type:numeric(12,2);not null" json:"total_amount"`
	Status      PurchaseStatus `gorm:"type:varchar(20);not null" json:"status"`
	CreatedAt   time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"not null" json:"updated_at"`

	Product *Product `gorm:"foreignKey:ProductID" json:"-"`
}
