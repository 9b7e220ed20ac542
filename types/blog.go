package types

import "GrainMall/models"

type ListBlogRequest struct {
	Limit  int `form:"limit,default=10"`
	Offset int `form:"offset,default=0"`
}

type ListBlogResponse struct {
	Posts []*models.BlogPost `json:"posts"`
	Total int64              `json:"total"`
}

type CreateBlogPostRequest struct {
	Title     string   `json:"title" binding:"required"`
	Slug      string   `json:"slug" binding:"required"`
	Excerpt   string   `json:"excerpt"`
	Content   string   `json:"content" binding:"required"`
	Image     string   `json:"image"`
	Category  string   `json:"category"`
	Tags      []string `json:"tags"`
	Published bool     `json:"published"`
}

type CreateBlogPostResponse struct {
	ID int64 `json:"id,string"`
}
