package handler

import (
	"GrainMall/config"
	"GrainMall/middleware"
	"GrainMall/pkg/context"
	"GrainMall/pkg/response"
	"GrainMall/service"
	"GrainMall/types"
	"net/http"

	"github.com/gin-gonic/gin"
)

type CartHandler struct {
	Config      *config.Config
	CartService service.ICartService
}

func (h *CartHandler) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	cart := r.Group("/v1/cart")
	cart.Use(authorize)
	cart.GET("/items", context.Wrap(h.GetItems))
	cart.POST("/add", context.Wrap(h.AddItem))
	cart.POST("/update", context.Wrap(h.UpdateItem))
	cart.POST("/remove", context.Wrap(h.RemoveItem))
	cart.POST("/clear", context.Wrap(h.Clear))
}

func (h *CartHandler) GetItems(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	items, err := h.CartService.GetItems(c.Request.Context(), userID)
	if err != nil {
		return err
	}
	response.Success(c, items)
	return nil
}

func (h *CartHandler) AddItem(c *gin.Context) error {
	var req types.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	if err := h.CartService.AddItem(c.Request.Context(), userID, &req); err != nil {
		return err
	}
	response.Success(c, gin.H{"success": true})
	return nil
}

func (h *CartHandler) UpdateItem(c *gin.Context) error {
	var req types.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	if err := h.CartService.UpdateItem(c.Request.Context(), userID, &req); err != nil {
		return err
	}
	response.Success(c, gin.H{"success": true})
	return nil
}

func (h *CartHandler) RemoveItem(c *gin.Context) error {
	var req types.RemoveCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	if err := h.CartService.RemoveItem(c.Request.Context(), userID, req.CartItemID); err != nil {
		return err
	}
	response.Success(c, gin.H{"success": true})
	return nil
}

func (h *CartHandler) Clear(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	if err := h.CartService.Clear(c.Request.Context(), userID); err != nil {
		return err
	}
	response.Success(c, gin.H{"success": true})
	return nil
}
