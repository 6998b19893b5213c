package models

import "time"

// MenuItem belongs to exactly one Restaurant and at most one MenuCategory.
// Child rows only carry the foreign key id; lookups go through the key, not
// an in-memory back-reference.
type MenuItem struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	RestaurantID uint      `gorm:"index;not null" json:"restaurant_id"`
	CategoryID   *uint     `gorm:"index" json:"category_id,omitempty"`
	Name         string    `gorm:"type:varchar(100);not null" json:"name"`
	Description  string    `gorm:"type:text" json:"description,omitempty"`
	Price        float64   `gorm:"type:decimal(10,2);not null" json:"price"`
	ImageURL     *string   `gorm:"type:varchar(255)" json:"image_url,omitempty"`
	IsAvailable  bool      `gorm:"not null;default:true" json:"is_available"`
	CreatedAt    time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`

	OrderItems []OrderItem `gorm:"foreignKey:MenuItemID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}
