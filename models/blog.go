package models

import (
	"time"

	"gorm.io/datatypes"
)

// BlogPost 博客文章表
type BlogPost struct {
	ID        int64          `gorm:"primaryKey;column:id" json:"id,string"`
	Title     string         `gorm:"size:255;not null;column:title" json:"title"`
	Slug      string         `gorm:"size:255;not null;uniqueIndex:idx_slug;column:slug" json:"slug"`
	Excerpt   string         `gorm:"size:500;column:excerpt" json:"excerpt"`
	Content   string         `gorm:"type:text;column:content" json:"content"`
	Image     string         `gorm:"type:text;column:image" json:"image"`
	Category  string         `gorm:"size:100;column:category" json:"category"`
	Tags      datatypes.JSON `gorm:"column:tags" json:"tags"`
	Author    string         `gorm:"size:255;column:author" json:"author"`
	Published bool           `gorm:"default:false;index:idx_published;column:published" json:"published"`
	ViewCount int64          `gorm:"default:0;column:view_count" json:"view_count"`
	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (BlogPost) TableName() string {
	return "blog_posts"
}
