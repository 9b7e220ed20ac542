package service

import (
	"GrainMall/dao"
	"GrainMall/dao/cache"
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

type ProductService struct {
	DB           *gorm.DB
	ProductDAO   *dao.Product
	ProductCache *cache.ProductCache
}

var _ IProductService = (*ProductService)(nil)

type IProductService interface {
	List(ctx base.Context, req *types.ListProductsRequest) (*types.ListProductsResponse, error)
	GetById(ctx base.Context, productID int64) (*models.Product, error)
	Create(ctx base.Context, userID, role string, req *types.CreateProductRequest) (*types.CreateProductResponse, error)
	Update(ctx base.Context, userID, role string, req *types.UpdateProductRequest) error
}

// 允许通过 update 接口修改的列，金额列在写入前转为分
var productUpdatableColumns = map[string]bool{
	"name": true, "description": true, "short_description": true,
	"price": true, "original_price": true, "sku": true, "category": true,
	"image": true, "images": true, "nutrition_info": true,
	"ingredients": true, "weight": true, "stock": true,
	"featured": true, "active": true,
}

func (p *ProductService) List(ctx base.Context, req *types.ListProductsRequest) (*types.ListProductsResponse, error) {
	limit := req.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	// 价格区间入参即为分，闭区间透传
	filter := dao.ProductFilter{
		Search:   req.Search,
		Category: req.Category,
		MinPrice: req.MinPrice,
		MaxPrice: req.MaxPrice,
		Featured: req.Featured,
	}

	products, total, err := p.ProductDAO.List(ctx, limit, req.Offset, filter)
	if err != nil {
		// 公开列表读取失败降级为空页，不把底层错误抛给货架
		log.L.Warn("product list degraded", zap.Error(err))
		return &types.ListProductsResponse{Products: []*models.Product{}}, nil
	}
	return &types.ListProductsResponse{Products: products, Total: total}, nil
}

// GetById 先查缓存，未命中回源并写缓存
func (p *ProductService) GetById(ctx base.Context, productID int64) (*models.Product, error) {
	if product, err := p.ProductCache.Get(ctx, productID); err == nil {
		return product, nil
	}

	product, err := p.ProductDAO.FindById(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NotFound("商品不存在")
		}
		return nil, err
	}

	if err := p.ProductCache.Set(ctx, product); err != nil {
		log.L.Warn("product cache set failed", zap.Int64("product_id", productID), zap.Error(err))
	}
	return product, nil
}

func (p *ProductService) Create(ctx base.Context, userID, role string, req *types.CreateProductRequest) (*types.CreateProductResponse, error) {
	if !context.IsStaff(role) {
		return nil, response.Forbidden("仅商家或管理员可发布商品")
	}

	product := &models.Product{
		ID:               snowflake.GenID(),
		Name:             req.Name,
		Description:      req.Description,
		ShortDescription: req.ShortDescription,
		Price:            Cents(req.Price),
		Category:         req.Category,
		Image:            req.Image,
		Ingredients:      req.Ingredients,
		Weight:           req.Weight,
		Stock:            req.Stock,
		Active:           true,
	}
	if req.OriginalPrice != nil {
		op := Cents(*req.OriginalPrice)
		product.OriginalPrice = &op
	}
	// 空 SKU 落 NULL，避免多个未填写 SKU 的商品在唯一索引上互撞
	if req.Sku != "" {
		product.Sku = &req.Sku
	}
	if len(req.Images) > 0 {
		data, _ := json.Marshal(req.Images)
		product.Images = datatypes.JSON(data)
	}
	if len(req.NutritionInfo) > 0 {
		data, _ := json.Marshal(req.NutritionInfo)
		product.NutritionInfo = datatypes.JSON(data)
	}
	// 商家发布的商品归属其名下，管理员发布视为平台自营
	if role == context.RoleMerchant {
		product.MerchantID = userID
	}

	if err := p.ProductDAO.Create(ctx, product); err != nil {
		return nil, errors.New("商品创建失败: " + err.Error())
	}
	return &types.CreateProductResponse{ID: product.ID}, nil
}

// Update 商家只能改自己的商品，管理员不受限；写库后失效缓存
func (p *ProductService) Update(ctx base.Context, userID, role string, req *types.UpdateProductRequest) error {
	product, err := p.ProductDAO.FindById(ctx, req.ID)
	if err != nil {
		return response.NotFound("商品不存在")
	}

	if role == context.RoleMerchant && product.MerchantID != userID {
		return response.Forbidden("无权修改他人商品")
	}
	if !context.IsStaff(role) {
		return response.Forbidden("仅商家或管理员可修改商品")
	}

	updates := make(map[string]interface{}, len(req.Updates))
	for k, v := range req.Updates {
		if !productUpdatableColumns[k] {
			continue
		}
		// 金额列接口单位为元
		if k == "price" || k == "original_price" {
			if f, ok := v.(float64); ok {
				v = Cents(f)
			}
		}
		updates[k] = v
	}
	if len(updates) == 0 {
		return response.NewError(400, "没有可更新的字段")
	}

	if err := p.ProductDAO.Update(ctx, req.ID, updates); err != nil {
		return err
	}
	if err := p.ProductCache.Del(ctx, req.ID); err != nil {
		log.L.Warn("product cache del failed", zap.Int64("product_id", req.ID), zap.Error(err))
	}
	return nil
}
