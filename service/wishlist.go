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

type WishlistService struct {
	DB          *gorm.DB
	WishlistDAO *dao.Wishlist
	ProductDAO  *dao.Product
}

var _ IWishlistService = (*WishlistService)(nil)

type IWishlistService interface {
	GetItems(ctx base.Context, userID string) ([]*types.WishlistItemView, error)
	AddItem(ctx base.Context, userID string, productID int64) error
	RemoveItem(ctx base.Context, userID string, productID int64) error
}

func (s *WishlistService) GetItems(ctx base.Context, userID string) ([]*types.WishlistItemView, error) {
	items, err := s.WishlistDAO.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	views := make([]*types.WishlistItemView, len(items))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(8)
	for i, item := range items {
		eg.Go(func() error {
			product, findErr := s.ProductDAO.FindById(egCtx, item.ProductID)
			if findErr != nil && !errors.Is(findErr, gorm.ErrRecordNotFound) {
				return findErr
			}
			views[i] = &types.WishlistItemView{WishlistItem: item, Product: product}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return views, nil
}

func (s *WishlistService) AddItem(ctx base.Context, userID string, productID int64) error {
	return s.WishlistDAO.Add(ctx, &models.WishlistItem{
		ID:        snowflake.GenID(),
		UserID:    userID,
		ProductID: productID,
	})
}

func (s *WishlistService) RemoveItem(ctx base.Context, userID string, productID int64) error {
	return s.WishlistDAO.Remove(ctx, userID, productID)
}
