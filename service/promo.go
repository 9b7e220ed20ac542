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
	"fmt"
	"math"
	"strconv"
	"time"

	"gorm.io/gorm"
)

type PromoService struct {
	DB       *gorm.DB
	PromoDAO *dao.Promo
}

var _ IPromoService = (*PromoService)(nil)

type IPromoService interface {
	Validate(ctx base.Context, code string, purchaseAmount int64) (*types.ValidatePromoResponse, error)
	CreatePromo(ctx base.Context, role string, req *types.CreatePromoRequest) (*types.CreatePromoResponse, error)
}

// CheckUsable 按固定优先级返回首个未通过的校验结果，全部通过返回空串。
// 优先级: 有效性 > 过期 > 次数上限 > 最低消费。纯函数，不触库不落库。
func CheckUsable(pc *models.PromoCode, purchaseAmount int64, now time.Time) string {
	if pc == nil || !pc.Active {
		return "Invalid promo code"
	}
	if pc.ExpiresAt != nil && now.After(*pc.ExpiresAt) {
		return "Promo code has expired"
	}
	// max_uses 为 NULL 或 0 都视为不限次数
	if pc.MaxUses != nil && *pc.MaxUses > 0 && pc.CurrentUses >= *pc.MaxUses {
		return "Promo code usage limit reached"
	}
	if pc.MinPurchase > 0 && purchaseAmount < pc.MinPurchase {
		// 文案中的门槛金额以元展示
		return fmt.Sprintf("Minimum purchase of %s is required",
			strconv.FormatFloat(Major(pc.MinPurchase), 'f', -1, 64))
	}
	return ""
}

// Discount 计算优惠金额（分）。percentage 按小计四舍五入，fixed 直接取面值
func Discount(pc *models.PromoCode, subtotal int64) int64 {
	switch pc.DiscountType {
	case models.DiscountTypePercentage:
		return int64(math.Round(float64(subtotal) * float64(pc.DiscountValue) / 100))
	case models.DiscountTypeFixed:
		return pc.DiscountValue
	default:
		return 0
	}
}

// Validate 只读校验，本身不消耗使用次数；次数扣减发生在订单落库事务内
func (p *PromoService) Validate(ctx base.Context, code string, purchaseAmount int64) (*types.ValidatePromoResponse, error) {
	pc, err := p.PromoDAO.FindActiveByCode(ctx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &types.ValidatePromoResponse{Valid: false, Error: "Invalid promo code"}, nil
		}
		return nil, err
	}

	if msg := CheckUsable(pc, purchaseAmount, time.Now()); msg != "" {
		return &types.ValidatePromoResponse{Valid: false, Error: msg}, nil
	}

	return &types.ValidatePromoResponse{Valid: true, PromoCode: pc}, nil
}

func (p *PromoService) CreatePromo(ctx base.Context, role string, req *types.CreatePromoRequest) (*types.CreatePromoResponse, error) {
	if role != context.RoleAdmin {
		return nil, response.Forbidden("仅管理员可创建优惠码")
	}

	pc := &models.PromoCode{
		ID:           snowflake.GenID(),
		Code:         req.Code,
		Description:  req.Description,
		DiscountType: req.DiscountType,
		MinPurchase:  Cents(req.MinPurchase),
		MaxUses:      req.MaxUses,
		Active:       true,
	}
	// percentage 的面值是百分比数字，不做分转换
	if req.DiscountType == models.DiscountTypePercentage {
		pc.DiscountValue = int64(math.Round(req.DiscountValue))
	} else {
		pc.DiscountValue = Cents(req.DiscountValue)
	}
	if req.ExpiresAt != nil && *req.ExpiresAt != "" {
		t, err := time.Parse(time.RFC3339, *req.ExpiresAt)
		if err != nil {
			return nil, response.NewError(400, "expires_at 格式错误，应为 RFC3339")
		}
		pc.ExpiresAt = &t
	}

	if err := p.PromoDAO.Create(ctx, pc); err != nil {
		return nil, errors.New("优惠码创建失败: " + err.Error())
	}
	return &types.CreatePromoResponse{ID: pc.ID}, nil
}
