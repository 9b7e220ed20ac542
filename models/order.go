package models

import (
	"time"

	"gorm.io/datatypes"
)

// 订单状态，自由写入不做状态机约束（行为与线上一致）
const (
	OrderStatusPending    = "pending"
	OrderStatusConfirmed  = "confirmed"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
	OrderStatusRefunded   = "refunded"
)

// Order 订单主表，金额全部以分存储
type Order struct {
	ID              int64          `gorm:"primaryKey;column:id" json:"id,string"`
	UserID          string         `gorm:"size:64;not null;index:idx_user_id;column:user_id" json:"user_id"`
	OrderNumber     string         `gorm:"size:50;not null;uniqueIndex:idx_order_number;column:order_number" json:"order_number"`
	Status          string         `gorm:"type:enum('pending','confirmed','processing','shipped','delivered','cancelled','refunded');default:'pending';column:status" json:"status"`
	Subtotal        int64          `gorm:"not null;column:subtotal" json:"subtotal"`
	Tax             int64          `gorm:"default:0;column:tax" json:"tax"`
	Shipping        int64          `gorm:"default:0;column:shipping" json:"shipping"`
	Discount        int64          `gorm:"default:0;column:discount" json:"discount"`
	Total           int64          `gorm:"not null;column:total" json:"total"` // 恒等于 subtotal + tax + shipping - discount
	PromoCode       string         `gorm:"size:50;column:promo_code" json:"promo_code"`
	PaymentMethod   string         `gorm:"type:enum('credit_card','paypal','apple_pay','bank_transfer');column:payment_method" json:"payment_method"`
	PaymentStatus   string         `gorm:"type:enum('pending','completed','failed','refunded');default:'pending';column:payment_status" json:"payment_status"`
	ShippingAddress datatypes.JSON `gorm:"not null;column:shipping_address" json:"shipping_address"`
	BillingAddress  datatypes.JSON `gorm:"column:billing_address" json:"billing_address"`
	Notes           string         `gorm:"type:text;column:notes" json:"notes"`
	TrackingNumber  string         `gorm:"size:100;column:tracking_number" json:"tracking_number"`
	CreatedAt       time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Order) TableName() string {
	return "orders"
}

// OrderItem 订单明细，下单时对商品做快照，后续商品改价改名不影响历史订单
type OrderItem struct {
	ID          int64  `gorm:"primaryKey;column:id" json:"id,string"`
	OrderID     int64  `gorm:"not null;index:idx_order_id;column:order_id" json:"order_id,string"`
	ProductID   int64  `gorm:"not null;index:idx_product_id;column:product_id" json:"product_id,string"`
	ProductName string `gorm:"size:255;not null;column:product_name" json:"product_name"` // 冗余商品名称，防止原商品删除/更名
	Quantity    int    `gorm:"not null;column:quantity" json:"quantity"`
	Price       int64  `gorm:"not null;column:price" json:"price"`       // 冗余下单单价（分），锁定成交价
	Subtotal    int64  `gorm:"not null;column:subtotal" json:"subtotal"` // 小计金额（分），单价 * 数量
}

func (OrderItem) TableName() string {
	return "order_items"
}
