package entity

// Customer is a buyer profile. A customer cannot be deleted while orders
// reference it.
type Customer struct {
	ID    uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	Name  string `json:"name" gorm:"type:text;not null"`
	Phone string `json:"phone" gorm:"type:text;not null"`
}
