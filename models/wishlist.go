package models

import "time"

// WishlistItem 心愿单
type WishlistItem struct {
	ID        int64     `gorm:"primaryKey;column:id" json:"id,string"`
	UserID    string    `gorm:"size:64;not null;uniqueIndex:idx_wish_user_product;column:user_id" json:"user_id"`
	ProductID int64     `gorm:"not null;uniqueIndex:idx_wish_user_product;column:product_id" json:"product_id,string"`
	AddedAt   time.Time `gorm:"column:added_at;autoCreateTime" json:"added_at"`
}

func (WishlistItem) TableName() string {
	return "wishlist_items"
}
