package service

import (
	"GrainMall/dao"
	"GrainMall/models"
	base "context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type UserService struct {
	DB      *gorm.DB
	UserDAO *dao.Users
}

var _ IUserService = (*UserService)(nil)

type IUserService interface {
	Me(ctx base.Context, userID, role string) (*models.Users, error)
	SyncProfile(ctx base.Context, user *models.Users) error
}

// Me 返回当前用户资料。令牌有效但本地无记录时按首次访问落一行，
// 后续登录回调会补全资料
func (s *UserService) Me(ctx base.Context, userID, role string) (*models.Users, error) {
	user, err := s.UserDAO.FindById(ctx, userID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	now := time.Now()
	user = &models.Users{
		ID:           userID,
		Role:         role,
		LastSignedIn: &now,
	}
	if upsertErr := s.UserDAO.Upsert(ctx, user); upsertErr != nil {
		return nil, upsertErr
	}
	return user, nil
}

// SyncProfile 登录回调同步外部身份服务下发的资料
func (s *UserService) SyncProfile(ctx base.Context, user *models.Users) error {
	now := time.Now()
	user.LastSignedIn = &now
	return s.UserDAO.Upsert(ctx, user)
}
