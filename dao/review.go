package dao

import (
	"GrainMall/models"
	"context"

	"gorm.io/gorm"
)

type Review struct {
	Repo[models.Review]
}

func NewReview(db *gorm.DB) *Review {
	return &Review{
		Repo: NewRepo[models.Review](db),
	}
}

// ListByProduct 按商品查评价，新评价在前
func (r *Review) ListByProduct(ctx context.Context, productID int64, limit, offset int) ([]*models.Review, int64, error) {
	var total int64
	query := r.Db.WithContext(ctx).Model(&models.Review{}).Where("product_id = ?", productID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var reviews []*models.Review
	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&reviews).Error
	return reviews, total, err
}

// HasVerifiedPurchase 用户是否买过该商品，评价是否标记"已购"
func (r *Review) HasVerifiedPurchase(ctx context.Context, userID string, productID int64) (bool, error) {
	var count int64
	err := r.Db.WithContext(ctx).Model(&models.OrderItem{}).
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("orders.user_id = ? AND order_items.product_id = ?", userID, productID).
		Count(&count).Error
	return count > 0, err
}
