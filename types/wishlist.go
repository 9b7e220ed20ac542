package types

import "GrainMall/models"

type WishlistItemRequest struct {
	ProductID int64 `json:"product_id,string" binding:"required"`
}

// WishlistItemView 收藏条目附当前商品信息
type WishlistItemView struct {
	*models.WishlistItem
	Product *models.Product `json:"product"`
}
