package model

import "time"

type Interest struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID       int64     `gorm:"not null;index" json:"user_id"`
	InterestName string    `gorm:"type:varchar(255);not null" json:"interest_name"`
	Category     *string   `gorm:"type:varchar(255)" json:"category"`
	Description  *string   `gorm:"type:text" json:"description"`
	CreatedAt    time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}

type Dislike struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      int64     `gorm:"not null;index" json:"user_id"`
	DislikeName string    `gorm:"type:varchar(255);not null" json:"dislike_name"`
	Category    *string   `gorm:"type:varchar(255)" json:"category"`
	Severity    *string   `gorm:"type:varchar(50)" json:"severity"`
	Description *string   `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
