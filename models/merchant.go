package models

import (
	"time"

	"gorm.io/datatypes"
)

// MerchantProfile 商家店铺资料，一个用户至多一个店铺
type MerchantProfile struct {
	ID               int64          `gorm:"primaryKey;column:id" json:"id,string"`
	UserID           string         `gorm:"size:64;not null;uniqueIndex:idx_merchant_user;column:user_id" json:"user_id"`
	StoreName        string         `gorm:"size:255;not null;column:store_name" json:"store_name"`
	StoreDescription string         `gorm:"type:text;column:store_description" json:"store_description"`
	Logo             string         `gorm:"type:text;column:logo" json:"logo"`
	Banner           string         `gorm:"type:text;column:banner" json:"banner"`
	Phone            string         `gorm:"size:20;column:phone" json:"phone"`
	Address          datatypes.JSON `gorm:"column:address" json:"address"`
	BankDetails      datatypes.JSON `gorm:"column:bank_details" json:"-"` // 敏感信息不出接口
	Verified         bool           `gorm:"default:false;column:verified" json:"verified"`
	Rating           float64        `gorm:"type:decimal(3,2);default:0;column:rating" json:"rating"`
	TotalSales       int64          `gorm:"default:0;column:total_sales" json:"total_sales"`
	CreatedAt        time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (MerchantProfile) TableName() string {
	return "merchant_profiles"
}
