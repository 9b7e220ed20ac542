package types

import "GrainMall/models"

// ListProductsRequest 商品列表查询参数，价格区间与存储同为分
type ListProductsRequest struct {
	Limit    int    `form:"limit,default=20"`
	Offset   int    `form:"offset,default=0"`
	Search   string `form:"search"`
	Category string `form:"category"`
	MinPrice *int64 `form:"min_price"`
	MaxPrice *int64 `form:"max_price"`
	Featured bool   `form:"featured"`
}

type ListProductsResponse struct {
	Products []*models.Product `json:"products"`
	Total    int64             `json:"total"`
}

// CreateProductRequest 价格以元为单位传入，落库时 ×100 转为分
type CreateProductRequest struct {
	Name             string                 `json:"name" binding:"required"`
	Description      string                 `json:"description"`
	ShortDescription string                 `json:"short_description"`
	Price            float64                `json:"price" binding:"required,gt=0"`
	OriginalPrice    *float64               `json:"original_price"`
	Sku              string                 `json:"sku"`
	Category         string                 `json:"category"`
	Image            string                 `json:"image"`
	Images           []string               `json:"images"`
	NutritionInfo    map[string]interface{} `json:"nutrition_info"`
	Ingredients      string                 `json:"ingredients"`
	Weight           string                 `json:"weight"`
	Stock            int64                  `json:"stock"`
}

type CreateProductResponse struct {
	ID int64 `json:"id,string"`
}

// UpdateProductRequest 部分更新，键为列名
type UpdateProductRequest struct {
	ID      int64                  `json:"id,string" binding:"required"`
	Updates map[string]interface{} `json:"updates" binding:"required"`
}
