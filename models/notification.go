package models

import "time"

const (
	NotifyTypeOrderStatus   = "order_status"
	NotifyTypePromotion     = "promotion"
	NotifyTypeReviewRequest = "review_request"
	NotifyTypeSystem        = "system"
	NotifyTypeMessage       = "message"
)

// Notification 站内通知，拉模式，无推送通道
type Notification struct {
	ID        int64     `gorm:"primaryKey;column:id" json:"id,string"`
	UserID    string    `gorm:"size:64;not null;index:idx_user_id;column:user_id" json:"user_id"`
	Type      string    `gorm:"type:enum('order_status','promotion','review_request','system','message');not null;column:type" json:"type"`
	Title     string    `gorm:"size:255;not null;column:title" json:"title"`
	Content   string    `gorm:"type:text;column:content" json:"content"`
	Read      bool      `gorm:"default:false;column:read" json:"read"`
	ActionURL string    `gorm:"type:text;column:action_url" json:"action_url"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Notification) TableName() string {
	return "notifications"
}
