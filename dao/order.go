package dao

import (
	"GrainMall/models"
	"context"

	"gorm.io/gorm"
)

type Order struct {
	Repo[models.Order]
}

func NewOrder(db *gorm.DB) *Order {
	return &Order{
		Repo: NewRepo[models.Order](db),
	}
}

// CreateWithItems 订单头和明细必须同一事务写入
func (o *Order) CreateWithItems(ctx context.Context, tx *gorm.DB, order *models.Order, items []*models.OrderItem) error {
	if err := tx.WithContext(ctx).Create(order).Error; err != nil {
		return err
	}
	return tx.WithContext(ctx).Create(items).Error
}

func (o *Order) ListByUser(ctx context.Context, userID string, limit, offset int) ([]*models.Order, int64, error) {
	var total int64
	query := o.Db.WithContext(ctx).Model(&models.Order{}).Where("user_id = ?", userID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var orders []*models.Order
	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&orders).Error
	return orders, total, err
}

func (o *Order) ItemsByOrder(ctx context.Context, orderID int64) ([]*models.OrderItem, error) {
	var items []*models.OrderItem
	err := o.Db.WithContext(ctx).Where("order_id = ?", orderID).Find(&items).Error
	return items, err
}

// UpdateStatus 状态为自由枚举写入，不做迁移表校验
func (o *Order) UpdateStatus(ctx context.Context, orderID int64, status string) error {
	return o.Db.WithContext(ctx).
		Model(&models.Order{}).
		Where("id = ?", orderID).
		UpdateColumn("status", status).Error
}
