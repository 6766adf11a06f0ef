package model

import (
	"time"

	"github.com/google/uuid"
)

// checked_out=false の注文がそのユーザーのカート。1ユーザーにつき1つ。
type Order struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      int64     `gorm:"not null;index" json:"user_id"`
	TotalAmount Money     `gorm:"type:numeric(12,2);not null" json:"total_amount"`
	CheckedOut  bool      `gorm:"not null" json:"checked_out"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`

	Purchases []Purchase `gorm:"foreignKey:OrderID" json:"-"`
}

// LineIndex は商品の明細位置を返す
func (o *Order) LineIndex(productID uuid.UUID) (int, bool) {
	for i := range o.Purchases {
		if o.Purchases[i].ProductID == productID {
			return i, true
		}
	}
	return -1, false
}

func (o *Order) RemoveLine(i int) {
	o.Purchases = append(o.Purchases[:i], o.Purchases[i+1:]...)
}
