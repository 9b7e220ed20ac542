package dao

import (
	"GrainMall/models"
	"context"

	"gorm.io/gorm"
)

type Promo struct {
	Repo[models.PromoCode]
}

func NewPromo(db *gorm.DB) *Promo {
	return &Promo{
		Repo: NewRepo[models.PromoCode](db),
	}
}

// FindActiveByCode 只返回启用中的码，未启用等同不存在
func (p *Promo) FindActiveByCode(ctx context.Context, code string) (*models.PromoCode, error) {
	return p.Repo.FindByWhere(ctx, "code = ? AND active = ?", code, true)
}

// IncrementUsage 带上限的并发安全自增，防止限量码超发。
// max_uses 为 NULL 或 0 不限次数；影响行数为 0 表示已达上限，调用方应使整单失败。
func (p *Promo) IncrementUsage(ctx context.Context, tx *gorm.DB, promoID int64) (int64, error) {
	result := tx.WithContext(ctx).
		Model(&models.PromoCode{}).
		Where("id = ? AND (max_uses IS NULL OR max_uses = 0 OR current_uses < max_uses)", promoID).
		UpdateColumn("current_uses", gorm.Expr("current_uses + 1"))
	return result.RowsAffected, result.Error
}
