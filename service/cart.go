package service

import (
	"GrainMall/dao"
	"GrainMall/models"
	"GrainMall/pkg/snowflake"
	"GrainMall/types"
	base "context"
	"errors"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

type CartService struct {
	DB         *gorm.DB
	CartDAO    *dao.Cart
	ProductDAO *dao.Product
}

var _ ICartService = (*CartService)(nil)

type ICartService interface {
	GetItems(ctx base.Context, userID string) ([]*types.CartItemView, error)
	AddItem(ctx base.Context, userID string, req *types.AddCartItemRequest) error
	UpdateItem(ctx base.Context, userID string, req *types.UpdateCartItemRequest) error
	RemoveItem(ctx base.Context, userID string, cartItemID int64) error
	Clear(ctx base.Context, userID string) error
}

// GetItems 返回购物车条目并并发回填商品信息。
// 商品已下架或被删除时 Product 置空，由前端提示失效。
func (s *CartService) GetItems(ctx base.Context, userID string) ([]*types.CartItemView, error) {
	items, err := s.CartDAO.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	views := make([]*types.CartItemView, len(items))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(8)
	for i, item := range items {
		eg.Go(func() error {
			product, findErr := s.ProductDAO.FindById(egCtx, item.ProductID)
			if findErr != nil && !errors.Is(findErr, gorm.ErrRecordNotFound) {
				return findErr
			}
			views[i] = &types.CartItemView{CartItem: item, Product: product}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return views, nil
}

// AddItem 不足 1 的数量按 1 处理；同一商品重复加购累加数量
func (s *CartService) AddItem(ctx base.Context, userID string, req *types.AddCartItemRequest) error {
	quantity := req.Quantity
	if quantity < 1 {
		quantity = 1
	}

	return s.CartDAO.Upsert(ctx, &models.CartItem{
		ID:        snowflake.GenID(),
		UserID:    userID,
		ProductID: req.ProductID,
		Quantity:  quantity,
	})
}

func (s *CartService) UpdateItem(ctx base.Context, userID string, req *types.UpdateCartItemRequest) error {
	return s.CartDAO.UpdateQuantity(ctx, req.CartItemID, userID, req.Quantity)
}

func (s *CartService) RemoveItem(ctx base.Context, userID string, cartItemID int64) error {
	return s.CartDAO.Remove(ctx, cartItemID, userID)
}

func (s *CartService) Clear(ctx base.Context, userID string) error {
	return s.CartDAO.Clear(ctx, s.DB, userID)
}
