package models

import "time"

// Users 用户表，ID 由外部登录服务签发 (varchar)
type Users struct {
	ID           string     `gorm:"primaryKey;size:64;column:id" json:"id"`
	Name         string     `gorm:"column:name" json:"name"`
	Email        *string    `gorm:"size:320;uniqueIndex:idx_email;column:email" json:"email"` // 可空唯一，未同步资料时为 NULL，空串会在唯一索引上互撞
	LoginMethod  string     `gorm:"size:64;column:login_method" json:"login_method"`
	Role         string     `gorm:"type:enum('user','merchant','admin');default:'user';not null;column:role" json:"role"` // 角色: user-顾客, merchant-商家, admin-管理员
	Phone        string     `gorm:"size:20;column:phone" json:"phone"`
	Avatar       string     `gorm:"type:text;column:avatar" json:"avatar"`
	CreatedAt    time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	LastSignedIn *time.Time `gorm:"column:last_signed_in" json:"last_signed_in"`
}

func (Users) TableName() string {
	return "users"
}
