package dao

import (
	"GrainMall/models"
	"context"

	"gorm.io/gorm"
)

type Merchant struct {
	Repo[models.MerchantProfile]
}

func NewMerchant(db *gorm.DB) *Merchant {
	return &Merchant{
		Repo: NewRepo[models.MerchantProfile](db),
	}
}

func (m *Merchant) FindByUserID(ctx context.Context, userID string) (*models.MerchantProfile, error) {
	return m.Repo.FindByWhere(ctx, "user_id = ?", userID)
}

func (m *Merchant) UpdateByUserID(ctx context.Context, userID string, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	return m.Db.WithContext(ctx).
		Model(&models.MerchantProfile{}).
		Where("user_id = ?", userID).
		Updates(updates).Error
}
