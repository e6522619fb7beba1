package domain

import "time"

type CartItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"column:user_id;not null;uniqueIndex:idx_cart_user_product" json:"userId"`
	ProductID ID        `gorm:"column:product_id;not null;uniqueIndex:idx_cart_user_product" json:"productId"`
	Quantity  int       `gorm:"column:quantity;not null;default:1" json:"quantity"`
	CreatedAt time.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updatedAt"`
}

func (CartItem) TableName() string {
	return "cart_items"
}
