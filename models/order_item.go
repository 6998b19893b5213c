package models

// OrderItem carries a price snapshot captured at order time, so later menu
// price edits never change historical orders.
type OrderItem struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	OrderID    uint    `gorm:"index;not null" json:"order_id"`
	MenuItemID uint    `gorm:"index;not null" json:"menu_item_id"`
	Quantity   int     `gorm:"not null" json:"quantity"`
	Price      float64 `gorm:"type:decimal(10,2);not null" json:"price"`
}
