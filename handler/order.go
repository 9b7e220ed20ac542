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

type OrderHandler struct {
	Config       *config.Config
	OrderService service.IOrderService
}

func (h *OrderHandler) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	orders := r.Group("/v1/orders")
	orders.Use(authorize)
	orders.GET("/list", context.Wrap(h.List))
	orders.GET("/:id", context.Wrap(h.GetById))
	orders.POST("/create", context.Wrap(h.Create))
	orders.POST("/update-status", context.Wrap(h.UpdateStatus))
}

func (h *OrderHandler) List(c *gin.Context) error {
	var req types.ListOrdersRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	resp, err := h.OrderService.List(c.Request.Context(), userID, req.Limit, req.Offset)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (h *OrderHandler) GetById(c *gin.Context) error {
	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || orderID <= 0 {
		return response.NewError(http.StatusBadRequest, "id 参数错误")
	}
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	resp, err := h.OrderService.GetById(c.Request.Context(), userID, orderID)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (h *OrderHandler) Create(c *gin.Context) error {
	var req types.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	resp, err := h.OrderService.Create(c.Request.Context(), userID, &req)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (h *OrderHandler) UpdateStatus(c *gin.Context) error {
	var req types.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	if err := h.OrderService.UpdateStatus(c.Request.Context(), userID, context.GetRole(c), &req); err != nil {
		return err
	}
	response.Success(c, gin.H{"success": true})
	return nil
}
