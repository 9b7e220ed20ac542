package service

import (
	"GrainMall/dao"
	"GrainMall/models"
	"GrainMall/pkg/context"
	"GrainMall/pkg/response"
	"GrainMall/pkg/snowflake"
	"GrainMall/types"
	base "context"
	"errors"

	"gorm.io/gorm"
)

type ContactService struct {
	DB         *gorm.DB
	ContactDAO *dao.Contact
}

var _ IContactService = (*ContactService)(nil)

type IContactService interface {
	Submit(ctx base.Context, req *types.SubmitContactRequest) (*types.SubmitContactResponse, error)
	List(ctx base.Context, role string, limit, offset int) (*types.ListContactResponse, error)
}

// Submit 公开接口，无需登录
func (s *ContactService) Submit(ctx base.Context, req *types.SubmitContactRequest) (*types.SubmitContactResponse, error) {
	submission := &models.ContactSubmission{
		ID:      snowflake.GenID(),
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
		Status:  "new",
	}
	if err := s.ContactDAO.Create(ctx, submission); err != nil {
		return nil, errors.New("留言提交失败: " + err.Error())
	}
	return &types.SubmitContactResponse{ID: submission.ID}, nil
}

func (s *ContactService) List(ctx base.Context, role string, limit, offset int) (*types.ListContactResponse, error) {
	if role != context.RoleAdmin {
		return nil, response.Forbidden("仅管理员可查看留言")
	}

	submissions, total, err := s.ContactDAO.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	return &types.ListContactResponse{Submissions: submissions, Total: total}, nil
}
