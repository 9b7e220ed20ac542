package service

import (
	"GrainMall/dao"
	"GrainMall/models"
	"GrainMall/pkg/context"
	"GrainMall/pkg/log"
	"GrainMall/pkg/response"
	"GrainMall/pkg/snowflake"
	"GrainMall/types"
	base "context"
	"encoding/json"
	"errors"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type BlogService struct {
	DB      *gorm.DB
	BlogDAO *dao.Blog
	UserDAO *dao.Users
}

var _ IBlogService = (*BlogService)(nil)

type IBlogService interface {
	List(ctx base.Context, limit, offset int) (*types.ListBlogResponse, error)
	GetBySlug(ctx base.Context, slug string) (*models.BlogPost, error)
	Create(ctx base.Context, role, authorID string, req *types.CreateBlogPostRequest) (*types.CreateBlogPostResponse, error)
}

func (s *BlogService) List(ctx base.Context, limit, offset int) (*types.ListBlogResponse, error) {
	posts, total, err := s.BlogDAO.ListPublished(ctx, limit, offset)
	if err != nil {
		// 公开列表读取失败降级为空页
		log.L.Warn("blog list degraded", zap.Error(err))
		return &types.ListBlogResponse{Posts: []*models.BlogPost{}}, nil
	}
	return &types.ListBlogResponse{Posts: posts, Total: total}, nil
}

// GetBySlug 草稿对外不可见；每次读取浏览数加一
func (s *BlogService) GetBySlug(ctx base.Context, slug string) (*models.BlogPost, error) {
	post, err := s.BlogDAO.FindPublishedBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NotFound("文章不存在")
		}
		return nil, err
	}

	if err := s.BlogDAO.IncrementViewCount(ctx, post.ID); err != nil {
		log.L.Warn("blog view count increment failed", zap.Int64("post_id", post.ID), zap.Error(err))
	}
	return post, nil
}

// Create 仅管理员；署名取用户展示名，无资料时落 "Admin"
func (s *BlogService) Create(ctx base.Context, role, authorID string, req *types.CreateBlogPostRequest) (*types.CreateBlogPostResponse, error) {
	if role != context.RoleAdmin {
		return nil, response.Forbidden("仅管理员可发布文章")
	}

	author := "Admin"
	if u, findErr := s.UserDAO.FindById(ctx, authorID); findErr == nil && u.Name != "" {
		author = u.Name
	}

	post := &models.BlogPost{
		ID:        snowflake.GenID(),
		Title:     req.Title,
		Slug:      req.Slug,
		Excerpt:   req.Excerpt,
		Content:   req.Content,
		Image:     req.Image,
		Category:  req.Category,
		Author:    author,
		Published: req.Published,
	}
	if len(req.Tags) > 0 {
		data, _ := json.Marshal(req.Tags)
		post.Tags = datatypes.JSON(data)
	}

	if err := s.BlogDAO.Create(ctx, post); err != nil {
		return nil, errors.New("文章创建失败: " + err.Error())
	}
	return &types.CreateBlogPostResponse{ID: post.ID}, nil
}
