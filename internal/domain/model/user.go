package model

// ユーザーのライフサイクル状態
type Condition string

const (
	ConditionActive            Condition = "Active"
	ConditionDeactivated       Condition = "Deactivated"
	ConditionMarkedForDeletion Condition = "Marked for deletion"
	ConditionTest              Condition = "Test"
	ConditionNoLongerInStock   Condition = "No longer in stock"
)

func (c Condition) Valid() bool {
	switch c {
	case ConditionActive, ConditionDeactivated, ConditionMarkedForDeletion, ConditionTest, ConditionNoLongerInStock:
		return true
	}
	return false
}

type User struct {
	ID            int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	LastName      string    `gorm:"type:varchar(255);not null" json:"last_name"`
	FirstName     string    `gorm:"type:varchar(255);not null" json:"first_name"`
	BirthDate     Date      `gorm:"type:date;not null" json:"birth_date"`
	Email         string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PhoneNumber   *string   `gorm:"type:varchar(16)" json:"phone_number"`
	Condition     Condition `gorm:"type:varchar(32);not null" json:"condition"`
	Street1       string    `gorm:"type:varchar(255);not null" json:"street1"`
	Street2       *string   `gorm:"type:varchar(255)" json:"street2"`
	City          string    `gorm:"type:varchar(255);not null" json:"city"`
	StateProvince string    `gorm:"type:varchar(255);not null" json:"state_province"`
	Zip           string    `gorm:"type:varchar(20);not null" json:"zip"`
	Country       string    `gorm:"type:varchar(100);not null" json:"country"`
}
