package handler

import (
	"GrainMall/config"
	"GrainMall/middleware"
	"GrainMall/pkg/context"
	"GrainMall/pkg/response"
	"GrainMall/service"
	"GrainMall/types"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	Config         *config.Config
	ProductService service.IProductService
}

func (p *ProductHandler) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(p.Config.Jwt.Secret))
	optional := middleware.OptionalAuth([]byte(p.Config.Jwt.Secret))
	products := r.Group("/v1/products")
	// 列表和详情公开，写操作需要商家或管理员身份
	products.GET("/list", optional, context.Wrap(p.List))
	products.GET("/:id", optional, context.Wrap(p.GetById))
	products.POST("/create", authorize, context.Wrap(p.Create))
	products.POST("/update", authorize, context.Wrap(p.Update))
}

func (p *ProductHandler) List(c *gin.Context) error {
	var req types.ListProductsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	resp, err := p.ProductService.List(c.Request.Context(), &req)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (p *ProductHandler) GetById(c *gin.Context) error {
	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || productID <= 0 {
		return response.NewError(http.StatusBadRequest, "id 参数错误")
	}

	product, err := p.ProductService.GetById(c.Request.Context(), productID)
	if err != nil {
		return err
	}
	response.Success(c, product)
	return nil
}

func (p *ProductHandler) Create(c *gin.Context) error {
	var req types.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	resp, err := p.ProductService.Create(c.Request.Context(), userID, context.GetRole(c), &req)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (p *ProductHandler) Update(c *gin.Context) error {
	var req types.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	if err := p.ProductService.Update(c.Request.Context(), userID, context.GetRole(c), &req); err != nil {
		return err
	}
	response.Success(c, gin.H{"success": true})
	return nil
}
