package service_test

import (
	"GrainMall/models"
	"GrainMall/service"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func int64Ptr(v int64) *int64 { return &v }

func TestCheckUsable(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(24 * time.Hour)

	tests := []struct {
		name     string
		promo    *models.PromoCode
		purchase int64
		want     string
	}{
		{
			name:  "nil promo",
			promo: nil,
			want:  "Invalid promo code",
		},
		{
			name:  "inactive promo",
			promo: &models.PromoCode{Code: "SAVE10", Active: false},
			want:  "Invalid promo code",
		},
		{
			name: "expired promo",
			promo: &models.PromoCode{
				Code: "SAVE10", Active: true, ExpiresAt: &past,
			},
			want: "Promo code has expired",
		},
		{
			// 过期优先于次数上限
			name: "expired wins over usage limit",
			promo: &models.PromoCode{
				Code: "SAVE10", Active: true, ExpiresAt: &past,
				MaxUses: int64Ptr(5), CurrentUses: 5,
			},
			want: "Promo code has expired",
		},
		{
			name: "usage limit reached",
			promo: &models.PromoCode{
				Code: "LIMITED", Active: true, ExpiresAt: &future,
				MaxUses: int64Ptr(5), CurrentUses: 5,
			},
			want: "Promo code usage limit reached",
		},
		{
			// max_uses 为 0 视为不限次数，不是已用尽
			name: "zero max uses means unlimited",
			promo: &models.PromoCode{
				Code: "ZERO", Active: true,
				MaxUses: int64Ptr(0), CurrentUses: 12,
			},
			want: "",
		},
		{
			name: "unlimited uses never hits limit",
			promo: &models.PromoCode{
				Code: "FOREVER", Active: true, CurrentUses: 100000,
			},
			want: "",
		},
		{
			name: "below minimum purchase",
			promo: &models.PromoCode{
				Code: "BIG", Active: true, MinPurchase: 5000,
			},
			purchase: 4999,
			want:     "Minimum purchase of 50 is required",
		},
		{
			name: "minimum purchase with fraction",
			promo: &models.PromoCode{
				Code: "BIG", Active: true, MinPurchase: 2550,
			},
			purchase: 100,
			want:     "Minimum purchase of 25.5 is required",
		},
		{
			name: "minimum purchase met exactly",
			promo: &models.PromoCode{
				Code: "BIG", Active: true, MinPurchase: 5000,
			},
			purchase: 5000,
			want:     "",
		},
		{
			name: "all checks pass",
			promo: &models.PromoCode{
				Code: "SAVE10", Active: true, ExpiresAt: &future,
				MaxUses: int64Ptr(100), CurrentUses: 3, MinPurchase: 1000,
			},
			purchase: 10000,
			want:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := service.CheckUsable(tt.promo, tt.purchase, now)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDiscount(t *testing.T) {
	tests := []struct {
		name     string
		promo    *models.PromoCode
		subtotal int64
		want     int64
	}{
		{
			name:     "percentage 10 off 100 yuan",
			promo:    &models.PromoCode{DiscountType: models.DiscountTypePercentage, DiscountValue: 10},
			subtotal: 10000,
			want:     1000,
		},
		{
			name:     "percentage rounds to nearest cent",
			promo:    &models.PromoCode{DiscountType: models.DiscountTypePercentage, DiscountValue: 15},
			subtotal: 999,
			want:     150, // 149.85 -> 150
		},
		{
			name:     "fixed amount ignores subtotal",
			promo:    &models.PromoCode{DiscountType: models.DiscountTypeFixed, DiscountValue: 500},
			subtotal: 10000,
			want:     500,
		},
		{
			name:     "unknown type gives nothing",
			promo:    &models.PromoCode{DiscountType: "bogus", DiscountValue: 500},
			subtotal: 10000,
			want:     0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, service.Discount(tt.promo, tt.subtotal))
		})
	}
}

func TestCentsMajor(t *testing.T) {
	assert.Equal(t, int64(1999), service.Cents(19.99))
	assert.Equal(t, int64(10), service.Cents(0.1))
	assert.Equal(t, int64(0), service.Cents(0))
	assert.Equal(t, 19.99, service.Major(1999))
	assert.Equal(t, 0.5, service.Major(50))
}
