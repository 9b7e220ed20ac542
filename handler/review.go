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

type ReviewHandler struct {
	Config        *config.Config
	ReviewService service.IReviewService
}

func (h *ReviewHandler) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	reviews := r.Group("/v1/reviews")
	reviews.GET("/product/:product_id", context.Wrap(h.GetByProduct)) // 商品评价列表（公开）
	reviews.POST("/create", authorize, context.Wrap(h.Create))
}

func (h *ReviewHandler) GetByProduct(c *gin.Context) error {
	productID, err := strconv.ParseInt(c.Param("product_id"), 10, 64)
	if err != nil || productID <= 0 {
		return response.NewError(http.StatusBadRequest, "product_id 参数错误")
	}

	var req types.ListReviewsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	resp, err := h.ReviewService.GetByProduct(c.Request.Context(), productID, req.Limit, req.Offset)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (h *ReviewHandler) Create(c *gin.Context) error {
	var req types.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	resp, err := h.ReviewService.Create(c.Request.Context(), userID, &req)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}
