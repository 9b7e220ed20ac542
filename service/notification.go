package service

import (
	"GrainMall/dao"
	"GrainMall/pkg/response"
	"GrainMall/types"
	base "context"

	"gorm.io/gorm"
)

type NotificationService struct {
	DB              *gorm.DB
	NotificationDAO *dao.Notification
}

var _ INotificationService = (*NotificationService)(nil)

type INotificationService interface {
	List(ctx base.Context, userID string, limit, offset int) (*types.ListNotificationsResponse, error)
	MarkAsRead(ctx base.Context, userID string, notificationID int64) error
}

func (s *NotificationService) List(ctx base.Context, userID string, limit, offset int) (*types.ListNotificationsResponse, error) {
	list, total, err := s.NotificationDAO.ListByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	return &types.ListNotificationsResponse{Notifications: list, Total: total}, nil
}

// MarkAsRead 标记他人通知等同于不存在
func (s *NotificationService) MarkAsRead(ctx base.Context, userID string, notificationID int64) error {
	rows, err := s.NotificationDAO.MarkRead(ctx, notificationID, userID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return response.NotFound("通知不存在")
	}
	return nil
}
