package cache

import (
	"GrainMall/models"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const productTTL = 10 * time.Minute

// ProductCache 商品详情缓存，写操作后主动失效
type ProductCache struct {
	redis *redis.Client
}

func NewProductCache(rds *redis.Client) *ProductCache {
	return &ProductCache{redis: rds}
}

func (p *ProductCache) key(productID int64) string {
	return fmt.Sprintf("grainmall:product:%d", productID)
}

func (p *ProductCache) Get(ctx context.Context, productID int64) (*models.Product, error) {
	val, err := p.redis.Get(ctx, p.key(productID)).Result()
	if err != nil {
		return nil, err
	}

	var product models.Product
	if err := json.Unmarshal([]byte(val), &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (p *ProductCache) Set(ctx context.Context, product *models.Product) error {
	data, err := json.Marshal(product)
	if err != nil {
		return err
	}
	return p.redis.Set(ctx, p.key(product.ID), data, productTTL).Err()
}

func (p *ProductCache) Del(ctx context.Context, productID int64) error {
	return p.redis.Del(ctx, p.key(productID)).Err()
}
