package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Product struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Price       Money     `gorm:"type:numeric(12,2);not null" json:"price"`
	Quantity    int64     `gorm:"not null" json:"quantity"`
	ImageURL    *string   `gorm:"type:text" json:"image_url"`
	Category    string    `gorm:"type:varchar(255);not null" json:"category"`
	SubCategory string    `gorm:"type:varchar(255);not null" json:"sub_category"`
	Brand       string    `gorm:"type:varchar(255);not null" json:"brand"`
	IsActive    bool      `gorm:"not null" json:"is_active"`
	CreatedAt   time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

// IDが空なら採番
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
