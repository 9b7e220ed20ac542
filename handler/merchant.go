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

type MerchantHandler struct {
	Config          *config.Config
	MerchantService service.IMerchantService
}

func (h *MerchantHandler) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	merchant := r.Group("/v1/merchant")
	merchant.Use(authorize)
	merchant.GET("/profile", context.Wrap(h.GetProfile))
	merchant.POST("/profile/create", context.Wrap(h.CreateProfile))
	merchant.POST("/profile/update", context.Wrap(h.UpdateProfile))
	merchant.GET("/products", context.Wrap(h.GetProducts))
}

func (h *MerchantHandler) GetProfile(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	profile, err := h.MerchantService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		return err
	}
	response.Success(c, profile)
	return nil
}

func (h *MerchantHandler) CreateProfile(c *gin.Context) error {
	var req types.CreateMerchantProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	resp, err := h.MerchantService.CreateProfile(c.Request.Context(), userID, &req)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (h *MerchantHandler) UpdateProfile(c *gin.Context) error {
	var req types.UpdateMerchantProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	if err := h.MerchantService.UpdateProfile(c.Request.Context(), userID, &req); err != nil {
		return err
	}
	response.Success(c, gin.H{"success": true})
	return nil
}

func (h *MerchantHandler) GetProducts(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	products, err := h.MerchantService.GetProducts(c.Request.Context(), userID, context.GetRole(c))
	if err != nil {
		return err
	}
	response.Success(c, products)
	return nil
}
