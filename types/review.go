package types

import "GrainMall/models"

type ListReviewsRequest struct {
	Limit  int `form:"limit,default=10"`
	Offset int `form:"offset,default=0"`
}

type ListReviewsResponse struct {
	Reviews []*models.Review `json:"reviews"`
	Total   int64            `json:"total"`
}

type CreateReviewRequest struct {
	ProductID int64  `json:"product_id,string" binding:"required"`
	Rating    int    `json:"rating" binding:"required,min=1,max=5"`
	Title     string `json:"title"`
	Content   string `json:"content"`
}

type CreateReviewResponse struct {
	ID int64 `json:"id,string"`
}
