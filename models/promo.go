package models

import "time"

const (
	DiscountTypePercentage = "percentage"
	DiscountTypeFixed      = "fixed"
)

// PromoCode 优惠码表
type PromoCode struct {
	ID            int64      `gorm:"primaryKey;column:id" json:"id,string"`
	Code          string     `gorm:"size:50;not null;uniqueIndex:idx_code;column:code" json:"code"`
	Description   string     `gorm:"type:text;column:description" json:"description"`
	DiscountType  string     `gorm:"type:enum('percentage','fixed');not null;column:discount_type" json:"discount_type"`
	DiscountValue int64      `gorm:"not null;column:discount_value" json:"discount_value"` // percentage 时为 0-100，fixed 时为分
	MinPurchase   int64      `gorm:"default:0;column:min_purchase" json:"min_purchase"`    // 最低消费（分），0 表示不限
	MaxUses       *int64     `gorm:"column:max_uses" json:"max_uses"`                      // NULL 或 0 表示不限次数
	CurrentUses   int64      `gorm:"default:0;column:current_uses" json:"current_uses"`    // 不变式: max_uses 非空时 current_uses <= max_uses
	Active        bool       `gorm:"default:true;column:active" json:"active"`
	ExpiresAt     *time.Time `gorm:"column:expires_at" json:"expires_at"`
	CreatedAt     time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (PromoCode) TableName() string {
	return "promo_codes"
}
