package models

import "time"

// CartItem 购物车条目，同一 (用户, 商品) 只允许一行
type CartItem struct {
	ID        int64     `gorm:"primaryKey;column:id" json:"id,string"`
	UserID    string    `gorm:"size:64;not null;uniqueIndex:idx_user_product;column:user_id" json:"user_id"`
	ProductID int64     `gorm:"not null;uniqueIndex:idx_user_product;column:product_id" json:"product_id,string"` // 弱引用，商品下架不级联
	Quantity  int       `gorm:"default:1;not null;column:quantity" json:"quantity"`
	AddedAt   time.Time `gorm:"column:added_at;autoCreateTime" json:"added_at"`
}

func (CartItem) TableName() string {
	return "cart_items"
}
