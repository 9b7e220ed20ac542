package service

import (
	"GrainMall/dao"
	"GrainMall/models"
	"GrainMall/pkg/context"
	"GrainMall/pkg/response"
	"GrainMall/pkg/snowflake"
	"GrainMall/types"
	base "context"
	"encoding/json"
	"errors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type MerchantService struct {
	DB          *gorm.DB
	MerchantDAO *dao.Merchant
	ProductDAO  *dao.Product
}

var _ IMerchantService = (*MerchantService)(nil)

type IMerchantService interface {
	GetProfile(ctx base.Context, userID string) (*models.MerchantProfile, error)
	CreateProfile(ctx base.Context, userID string, req *types.CreateMerchantProfileRequest) (*types.CreateMerchantProfileResponse, error)
	UpdateProfile(ctx base.Context, userID string, req *types.UpdateMerchantProfileRequest) error
	GetProducts(ctx base.Context, userID, role string) ([]*models.Product, error)
}

// 开放给 update 接口的店铺资料列
var merchantUpdatableColumns = map[string]bool{
	"store_name": true, "store_description": true, "logo": true,
	"banner": true, "phone": true, "address": true,
}

// GetProfile 未开店返回空，不视为错误
func (s *MerchantService) GetProfile(ctx base.Context, userID string) (*models.MerchantProfile, error) {
	profile, err := s.MerchantDAO.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return profile, nil
}

func (s *MerchantService) CreateProfile(ctx base.Context, userID string, req *types.CreateMerchantProfileRequest) (*types.CreateMerchantProfileResponse, error) {
	if exists, _ := s.MerchantDAO.IsExist(ctx, "user_id = ?", userID); exists {
		return nil, response.NewError(400, "已有店铺，无法重复创建")
	}

	profile := &models.MerchantProfile{
		ID:               snowflake.GenID(),
		UserID:           userID,
		StoreName:        req.StoreName,
		StoreDescription: req.StoreDescription,
		Logo:             req.Logo,
		Banner:           req.Banner,
		Phone:            req.Phone,
	}
	if len(req.Address) > 0 {
		data, _ := json.Marshal(req.Address)
		profile.Address = datatypes.JSON(data)
	}

	if err := s.MerchantDAO.Create(ctx, profile); err != nil {
		return nil, errors.New("店铺创建失败: " + err.Error())
	}
	return &types.CreateMerchantProfileResponse{ID: profile.ID}, nil
}

func (s *MerchantService) UpdateProfile(ctx base.Context, userID string, req *types.UpdateMerchantProfileRequest) error {
	updates := make(map[string]interface{}, len(req.Updates))
	for k, v := range req.Updates {
		if !merchantUpdatableColumns[k] {
			continue
		}
		if k == "address" {
			data, err := json.Marshal(v)
			if err != nil {
				return response.NewError(400, "address 格式错误")
			}
			v = datatypes.JSON(data)
		}
		updates[k] = v
	}
	if len(updates) == 0 {
		return response.NewError(400, "没有可更新的字段")
	}
	return s.MerchantDAO.UpdateByUserID(ctx, userID, updates)
}

// GetProducts 商家看自己的商品，管理员看全量
func (s *MerchantService) GetProducts(ctx base.Context, userID, role string) ([]*models.Product, error) {
	if !context.IsStaff(role) {
		return nil, response.Forbidden("仅商家或管理员可查看")
	}

	if role == context.RoleAdmin {
		return s.ProductDAO.ListAll(ctx, 100)
	}
	return s.ProductDAO.ListByMerchant(ctx, userID)
}
