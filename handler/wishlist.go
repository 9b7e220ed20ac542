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

type WishlistHandler struct {
	Config          *config.Config
	WishlistService service.IWishlistService
}

func (h *WishlistHandler) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	wishlist := r.Group("/v1/wishlist")
	wishlist.Use(authorize)
	wishlist.GET("/items", context.Wrap(h.GetItems))
	wishlist.POST("/add", context.Wrap(h.AddItem))
	wishlist.POST("/remove", context.Wrap(h.RemoveItem))
}

func (h *WishlistHandler) GetItems(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	items, err := h.WishlistService.GetItems(c.Request.Context(), userID)
	if err != nil {
		return err
	}
	response.Success(c, items)
	return nil
}

func (h *WishlistHandler) AddItem(c *gin.Context) error {
	var req types.WishlistItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	if err := h.WishlistService.AddItem(c.Request.Context(), userID, req.ProductID); err != nil {
		return err
	}
	response.Success(c, gin.H{"success": true})
	return nil
}

func (h *WishlistHandler) RemoveItem(c *gin.Context) error {
	var req types.WishlistItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	if err := h.WishlistService.RemoveItem(c.Request.Context(), userID, req.ProductID); err != nil {
		return err
	}
	response.Success(c, gin.H{"success": true})
	return nil
}
