package dao

import (
	"GrainMall/models"
	"context"

	"gorm.io/gorm"
)

type Notification struct {
	Repo[models.Notification]
}

func NewNotification(db *gorm.DB) *Notification {
	return &Notification{
		Repo: NewRepo[models.Notification](db),
	}
}

// CreateTx 在业务事务内写通知（如下单成功）
func (n *Notification) CreateTx(ctx context.Context, tx *gorm.DB, notify *models.Notification) error {
	return tx.WithContext(ctx).Create(notify).Error
}

func (n *Notification) ListByUser(ctx context.Context, userID string, limit, offset int) ([]*models.Notification, int64, error) {
	var total int64
	query := n.Db.WithContext(ctx).Model(&models.Notification{}).Where("user_id = ?", userID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var list []*models.Notification
	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&list).Error
	return list, total, err
}

// MarkRead 只能标记自己的通知
func (n *Notification) MarkRead(ctx context.Context, notificationID int64, userID string) (int64, error) {
	result := n.Db.WithContext(ctx).
		Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", notificationID, userID).
		UpdateColumn("read", true)
	return result.RowsAffected, result.Error
}
