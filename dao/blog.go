package dao

import (
	"GrainMall/models"
	"context"

	"gorm.io/gorm"
)

type Blog struct {
	Repo[models.BlogPost]
}

func NewBlog(db *gorm.DB) *Blog {
	return &Blog{
		Repo: NewRepo[models.BlogPost](db),
	}
}

// ListPublished 只返回已发布文章，新文章在前
func (b *Blog) ListPublished(ctx context.Context, limit, offset int) ([]*models.BlogPost, int64, error) {
	var total int64
	query := b.Db.WithContext(ctx).Model(&models.BlogPost{}).Where("published = ?", true)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var posts []*models.BlogPost
	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&posts).Error
	return posts, total, err
}

func (b *Blog) FindPublishedBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	return b.Repo.FindByWhere(ctx, "slug = ? AND published = ?", slug, true)
}

func (b *Blog) IncrementViewCount(ctx context.Context, postID int64) error {
	return b.Db.WithContext(ctx).
		Model(&models.BlogPost{}).
		Where("id = ?", postID).
		UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error
}
