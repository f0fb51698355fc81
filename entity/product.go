package entity

// Product is a catalog item. Image and Description are optional display
// fields; Price is the current list price, not the price recorded on orders.
type Product struct {
	ID          uint    `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string  `json:"name" gorm:"type:text;not null"`
	Price       float64 `json:"price" gorm:"not null"`
	Image       string  `json:"image" gorm:"type:text"`
	Description string  `json:"description" gorm:"type:text"`
}
