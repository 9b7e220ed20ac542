package types

import "GrainMall/models"

// MeResponse 当前登录身份，由网关签发的令牌解析而来
type MeResponse struct {
	UserID string        `json:"user_id"`
	Role   string        `json:"role"`
	User   *models.Users `json:"user"`
}

// SyncProfileRequest 登录回调带来的外部身份资料
type SyncProfileRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email" binding:"omitempty,email"`
	LoginMethod string `json:"login_method"`
	Phone       string `json:"phone"`
	Avatar      string `json:"avatar"`
}
