package models

import "time"

// Restaurant is owned by a User. Deleting a restaurant cascades to its
// menu items and orders at the database level.
type Restaurant struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`
	Address   *string   `gorm:"type:text" json:"address,omitempty"`
	Phone     *string   `gorm:"type:varchar(15)" json:"phone,omitempty"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`

	MenuItems []MenuItem `gorm:"foreignKey:RestaurantID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"menu_items,omitempty"`
	Orders    []Order    `gorm:"foreignKey:RestaurantID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}
