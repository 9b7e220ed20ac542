package types

import "GrainMall/models"

type AddCartItemRequest struct {
	ProductID int64 `json:"product_id,string" binding:"required"`
	Quantity  int   `json:"quantity"` // 小于 1 时按 1 处理
}

type UpdateCartItemRequest struct {
	CartItemID int64 `json:"cart_item_id,string" binding:"required"`
	Quantity   int   `json:"quantity" binding:"min=0"` // 0 表示删除该条目
}

type RemoveCartItemRequest struct {
	CartItemID int64 `json:"cart_item_id,string" binding:"required"`
}

// CartItemView 购物车条目附当前商品信息，商品已不存在时 Product 为空
type CartItemView struct {
	*models.CartItem
	Product *models.Product `json:"product"`
}
