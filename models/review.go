package models

import "time"

// Review 商品评价表，同一用户可对同一商品多次评价（与线上行为保持一致）
type Review struct {
	ID        int64     `gorm:"primaryKey;column:id" json:"id,string"`
	ProductID int64     `gorm:"not null;index:idx_product_id;column:product_id" json:"product_id,string"`
	UserID    string    `gorm:"size:64;not null;index:idx_user_id;column:user_id" json:"user_id"`
	Rating    int       `gorm:"not null;column:rating" json:"rating"` // 1-5 星
	Title     string    `gorm:"size:255;column:title" json:"title"`
	Content   string    `gorm:"type:text;column:content" json:"content"`
	Verified  bool      `gorm:"default:false;column:verified" json:"verified"` // 是否已核实购买
	Helpful   int       `gorm:"default:0;column:helpful" json:"helpful"`       // 有用数
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Review) TableName() string {
	return "reviews"
}
