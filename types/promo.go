package types

import "GrainMall/models"

// ValidatePromoRequest 金额为元
type ValidatePromoRequest struct {
	Code           string  `form:"code" binding:"required"`
	PurchaseAmount float64 `form:"purchase_amount"`
}

// ValidatePromoResponse 校验失败时 Error 给出首个未通过的原因
type ValidatePromoResponse struct {
	Valid     bool              `json:"valid"`
	PromoCode *models.PromoCode `json:"promo_code,omitempty"`
	Error     string            `json:"error,omitempty"`
}

type CreatePromoRequest struct {
	Code          string  `json:"code" binding:"required"`
	Description   string  `json:"description"`
	DiscountType  string  `json:"discount_type" binding:"required,oneof=percentage fixed"`
	DiscountValue float64 `json:"discount_value" binding:"required,gt=0"` // percentage 为百分比数值，fixed 为元
	MinPurchase   float64 `json:"min_purchase" binding:"gte=0"`
	MaxUses       *int64  `json:"max_uses"`
	ExpiresAt     *string `json:"expires_at"` // RFC3339，可空
}

type CreatePromoResponse struct {
	ID int64 `json:"id,string"`
}
