package domain

import "time"

// ProductView is one product page view. UserID is nil for anonymous visitors.
type ProductView struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"-"`
	UserID    *ID       `gorm:"column:user_id;index" json:"userId"`
	ProductID ID        `gorm:"column:product_id;not null;index" json:"productId"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}

func (ProductView) TableName() string {
	return "product_views"
}
