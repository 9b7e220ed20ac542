package dao

import (
	"GrainMall/models"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Users struct {
	Repo[models.Users]
}

func NewUsers(db *gorm.DB) *Users {
	return &Users{
		Repo: NewRepo[models.Users](db),
	}
}

// Upsert 登录回调同步用户资料，存在则更新最近登录时间
func (u *Users) Upsert(ctx context.Context, user *models.Users) error {
	return u.Db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns(
			[]string{"name", "email", "login_method", "phone", "avatar", "last_signed_in"},
		),
	}).Create(user).Error
}
