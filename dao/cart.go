package dao

import (
	"GrainMall/models"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Cart struct {
	Repo[models.CartItem]
}

func NewCart(db *gorm.DB) *Cart {
	return &Cart{
		Repo: NewRepo[models.CartItem](db),
	}
}

func (c *Cart) ListByUser(ctx context.Context, userID string) ([]*models.CartItem, error) {
	var items []*models.CartItem
	err := c.Db.WithContext(ctx).Where("user_id = ?", userID).Find(&items).Error
	return items, err
}

// Upsert 同一 (用户, 商品) 命中唯一索引时累加数量，保证永远只有一行
func (c *Cart) Upsert(ctx context.Context, item *models.CartItem) error {
	return c.Db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity": gorm.Expr("quantity + VALUES(quantity)"),
		}),
	}).Create(item).Error
}

// UpdateQuantity 数量小于等于 0 视为删除
func (c *Cart) UpdateQuantity(ctx context.Context, cartItemID int64, userID string, quantity int) error {
	if quantity <= 0 {
		return c.Db.WithContext(ctx).
			Where("id = ? AND user_id = ?", cartItemID, userID).
			Delete(&models.CartItem{}).Error
	}
	return c.Db.WithContext(ctx).
		Model(&models.CartItem{}).
		Where("id = ? AND user_id = ?", cartItemID, userID).
		UpdateColumn("quantity", quantity).Error
}

func (c *Cart) Remove(ctx context.Context, cartItemID int64, userID string) error {
	return c.Db.WithContext(ctx).
		Where("id = ? AND user_id = ?", cartItemID, userID).
		Delete(&models.CartItem{}).Error
}

// Clear 清空用户购物车，下单成功后在同一事务内调用
func (c *Cart) Clear(ctx context.Context, tx *gorm.DB, userID string) error {
	return tx.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&models.CartItem{}).Error
}
