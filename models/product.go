package models

import (
	"time"

	"gorm.io/datatypes"
)

// Product 对应数据库中的 products 表
type Product struct {
	ID               int64          `gorm:"primaryKey;column:id" json:"id,string"`                                 // ID: 雪花ID
	Name             string         `gorm:"size:255;not null;column:name" json:"name"`                             // Name: 商品名称
	Description      string         `gorm:"type:text;column:description" json:"description"`                       // Description: 商品详细描述
	ShortDescription string         `gorm:"size:500;column:short_description" json:"short_description"`            // ShortDescription: 列表页简介
	Price            int64          `gorm:"not null;column:price" json:"price"`                                    // Price: 价格（单位：分）
	OriginalPrice    *int64         `gorm:"column:original_price" json:"original_price"`                           // OriginalPrice: 划线原价（分），用于折扣展示
	Sku              *string        `gorm:"size:100;uniqueIndex:idx_sku;column:sku" json:"sku"`                    // Sku: 商品编码，可空唯一，未填写为 NULL
	Category         string         `gorm:"size:100;default:'barley-powder';column:category" json:"category"`      // Category: 分类
	Image            string         `gorm:"type:text;column:image" json:"image"`                                   // Image: 主图 URL
	Images           datatypes.JSON `gorm:"column:images" json:"images"`                                           // Images: 图片列表 JSON 数组
	NutritionInfo    datatypes.JSON `gorm:"column:nutrition_info" json:"nutrition_info"`                           // NutritionInfo: 营养成分 JSON
	Ingredients      string         `gorm:"type:text;column:ingredients" json:"ingredients"`                       // Ingredients: 配料表
	Weight           string         `gorm:"size:50;column:weight" json:"weight"`                                   // Weight: 规格，如 "500g"
	Stock            int64          `gorm:"default:0;not null;column:stock" json:"stock"`                          // Stock: 库存数量
	Rating           float64        `gorm:"type:decimal(3,2);default:0;column:rating" json:"rating"`               // Rating: 平均评分
	ReviewCount      int64          `gorm:"default:0;column:review_count" json:"review_count"`                     // ReviewCount: 评论数
	Featured         bool           `gorm:"default:false;index:idx_featured;column:featured" json:"featured"`      // Featured: 是否精选
	Active           bool           `gorm:"default:true;not null;index:idx_active;column:active" json:"active"`    // Active: 上架标记，下架为软删除
	MerchantID       string         `gorm:"size:64;index:idx_merchant_id;column:merchant_id" json:"merchant_id"`   // MerchantID: 所属商家用户ID，平台自营为空
	CreatedAt        time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Product) TableName() string {
	return "products"
}
