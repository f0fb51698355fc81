package entity

import "time"

// Order is a customer purchase. Total is denormalized from the line items at
// creation time; a stored zero alongside non-zero items is a repairable
// inconsistency, see the order service.
type Order struct {
	ID         uint        `json:"id" gorm:"primaryKey;autoIncrement"`
	CustomerID uint        `json:"customer_id" gorm:"index;not null"`
	OrderDate  time.Time   `json:"order_date"`
	Total      float64     `json:"total"`
	Customer   *Customer   `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	Items      []OrderItem `json:"items,omitempty" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// OrderItem is a single line of an order. Price is the unit price captured
// when the order was placed, independent of the product's current price.
type OrderItem struct {
	ID        uint     `json:"id" gorm:"primaryKey;autoIncrement"`
	OrderID   uint     `json:"order_id" gorm:"index;not null"`
	ProductID uint     `json:"product_id" gorm:"index;not null"`
	Quantity  int      `json:"quantity" gorm:"not null"`
	Price     float64  `json:"price" gorm:"not null"`
	Product   *Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
}

// TableName keeps the historical table name for order line items.
func (OrderItem) TableName() string { return "order_details" }
