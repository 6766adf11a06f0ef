package model

// アレルギーのマスタ。nameが主キー。
type Allergy struct {
	Name        string  `gorm:"type:varchar(255);primaryKey" json:"name"`
	Description *string `gorm:"type:text" json:"description"`
}

// ユーザーとアレルギーの中間テーブル
type UserAllergy struct {
	UserID      int64   `gorm:"primaryKey;autoIncrement:false" json:"user_id"`
	AllergyName string  `gorm:"type:varchar(255);primaryKey" json:"allergy_name"`
	Notes       *string `gorm:"type:text" json:"notes"`
}
