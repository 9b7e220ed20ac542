package dao

import (
	"GrainMall/models"
	"context"

	"gorm.io/gorm"
)

// ProductFilter 商品列表筛选条件，价格区间为闭区间（分）
type ProductFilter struct {
	Search   string
	Category string
	MinPrice *int64
	MaxPrice *int64
	Featured bool
}

type Product struct {
	Repo[models.Product]
}

func NewProduct(db *gorm.DB) *Product {
	return &Product{
		Repo: NewRepo[models.Product](db),
	}
}

// List 默认只返回上架商品，limit/offset 分页，不保证全局排序
func (p *Product) List(ctx context.Context, limit, offset int, filter ProductFilter) ([]*models.Product, int64, error) {
	query := p.Db.WithContext(ctx).Model(&models.Product{}).Where("active = ?", true)

	if filter.Search != "" {
		query = query.Where("name LIKE ?", "%"+filter.Search+"%")
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.MinPrice != nil {
		query = query.Where("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("price <= ?", *filter.MaxPrice)
	}
	if filter.Featured {
		query = query.Where("featured = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var products []*models.Product
	if err := query.Limit(limit).Offset(offset).Find(&products).Error; err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

func (p *Product) ListByMerchant(ctx context.Context, merchantID string) ([]*models.Product, error) {
	var products []*models.Product
	err := p.Db.WithContext(ctx).
		Where("merchant_id = ?", merchantID).
		Find(&products).Error
	return products, err
}

func (p *Product) ListAll(ctx context.Context, limit int) ([]*models.Product, error) {
	var products []*models.Product
	err := p.Db.WithContext(ctx).Limit(limit).Find(&products).Error
	return products, err
}

func (p *Product) Update(ctx context.Context, productID int64, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	return p.Db.WithContext(ctx).
		Model(&models.Product{}).
		Where("id = ?", productID).
		Updates(updates).Error
}

// DecrementStock 条件扣减库存，库存不足时影响行数为 0，由调用方判定失败
func (p *Product) DecrementStock(ctx context.Context, tx *gorm.DB, productID int64, quantity int) (int64, error) {
	result := tx.WithContext(ctx).
		Model(&models.Product{}).
		Where("id = ? AND stock >= ?", productID, quantity).
		UpdateColumn("stock", gorm.Expr("stock - ?", quantity))
	return result.RowsAffected, result.Error
}

// RefreshRating 按评价表重算平均分和评论数
func (p *Product) RefreshRating(ctx context.Context, tx *gorm.DB, productID int64) error {
	return tx.WithContext(ctx).
		Model(&models.Product{}).
		Where("id = ?", productID).
		Updates(map[string]interface{}{
			"rating":       gorm.Expr("(SELECT COALESCE(AVG(rating), 0) FROM reviews WHERE product_id = ?)", productID),
			"review_count": gorm.Expr("(SELECT COUNT(*) FROM reviews WHERE product_id = ?)", productID),
		}).Error
}
