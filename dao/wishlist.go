package dao

import (
	"GrainMall/models"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Wishlist struct {
	Repo[models.WishlistItem]
}

func NewWishlist(db *gorm.DB) *Wishlist {
	return &Wishlist{
		Repo: NewRepo[models.WishlistItem](db),
	}
}

func (w *Wishlist) ListByUser(ctx context.Context, userID string) ([]*models.WishlistItem, error) {
	var items []*models.WishlistItem
	err := w.Db.WithContext(ctx).Where("user_id = ?", userID).Find(&items).Error
	return items, err
}

// Add 重复收藏静默忽略
func (w *Wishlist) Add(ctx context.Context, item *models.WishlistItem) error {
	return w.Db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
		DoNothing: true,
	}).Create(item).Error
}

func (w *Wishlist) Remove(ctx context.Context, userID string, productID int64) error {
	return w.Db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&models.WishlistItem{}).Error
}
