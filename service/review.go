package service

import (
	"GrainMall/dao"
	"GrainMall/models"
	"GrainMall/pkg/log"
	"GrainMall/pkg/snowflake"
	"GrainMall/types"
	base "context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ReviewService struct {
	DB           *gorm.DB
	ReviewDAO    *dao.Review
	ProductDAO   *dao.Product
	ProductCache ProductCacheInvalidator
}

var _ IReviewService = (*ReviewService)(nil)

type IReviewService interface {
	GetByProduct(ctx base.Context, productID int64, limit, offset int) (*types.ListReviewsResponse, error)
	Create(ctx base.Context, userID string, req *types.CreateReviewRequest) (*types.CreateReviewResponse, error)
}

func (s *ReviewService) GetByProduct(ctx base.Context, productID int64, limit, offset int) (*types.ListReviewsResponse, error) {
	reviews, total, err := s.ReviewDAO.ListByProduct(ctx, productID, limit, offset)
	if err != nil {
		// 评价列表读取失败降级为空页，不影响商品详情页渲染
		log.L.Warn("review list degraded", zap.Int64("product_id", productID), zap.Error(err))
		return &types.ListReviewsResponse{Reviews: []*models.Review{}}, nil
	}
	return &types.ListReviewsResponse{Reviews: reviews, Total: total}, nil
}

// Create 同一用户可对同一商品多次评价，不加唯一约束。
// 买过该商品的评价自动带"已购"标记；商品均分与评论数随评价同事务刷新。
func (s *ReviewService) Create(ctx base.Context, userID string, req *types.CreateReviewRequest) (*types.CreateReviewResponse, error) {
	verified, err := s.ReviewDAO.HasVerifiedPurchase(ctx, userID, req.ProductID)
	if err != nil {
		verified = false
	}

	review := &models.Review{
		ID:        snowflake.GenID(),
		ProductID: req.ProductID,
		UserID:    userID,
		Rating:    req.Rating,
		Title:     req.Title,
		Content:   req.Content,
		Verified:  verified,
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if txErr := tx.Create(review).Error; txErr != nil {
			return txErr
		}
		return s.ProductDAO.RefreshRating(ctx, tx, req.ProductID)
	})
	if err != nil {
		return nil, errors.New("评价提交失败: " + err.Error())
	}

	// 均分和评论数已变化，失效商品缓存
	if delErr := s.ProductCache.Del(ctx, req.ProductID); delErr != nil {
		log.L.Warn("product cache del failed", zap.Int64("product_id", req.ProductID), zap.Error(delErr))
	}

	return &types.CreateReviewResponse{ID: review.ID}, nil
}
