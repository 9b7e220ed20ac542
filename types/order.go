package types

import "GrainMall/models"

// OrderLine 下单行，价格为下单时刻单价（元）
type OrderLine struct {
	ProductID int64   `json:"product_id,string" binding:"required"`
	Quantity  int     `json:"quantity" binding:"required,min=1"`
	Price     float64 `json:"price" binding:"required,gte=0"`
}

// CreateOrderRequest 金额均为元，服务端统一 ×100 转分
type CreateOrderRequest struct {
	Items           []OrderLine            `json:"items" binding:"required,min=1,dive"`
	ShippingAddress map[string]interface{} `json:"shipping_address" binding:"required"`
	BillingAddress  map[string]interface{} `json:"billing_address"`
	PaymentMethod   string                 `json:"payment_method" binding:"required,oneof=credit_card paypal apple_pay bank_transfer"`
	PromoCode       string                 `json:"promo_code"`
	Subtotal        float64                `json:"subtotal" binding:"gte=0"`
	Tax             float64                `json:"tax" binding:"gte=0"`
	Shipping        float64                `json:"shipping" binding:"gte=0"`
	Discount        float64                `json:"discount" binding:"gte=0"`
	Notes           string                 `json:"notes"`
}

type CreateOrderResponse struct {
	OrderID     int64  `json:"order_id,string"`
	OrderNumber string `json:"order_number"`
}

type ListOrdersRequest struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

type ListOrdersResponse struct {
	Orders []*models.Order `json:"orders"`
	Total  int64           `json:"total"`
}

type OrderDetailResponse struct {
	*models.Order
	Items []*models.OrderItem `json:"items"`
}

type UpdateOrderStatusRequest struct {
	ID     int64  `json:"id,string" binding:"required"`
	Status string `json:"status" binding:"required,oneof=pending confirmed processing shipped delivered cancelled refunded"`
}
