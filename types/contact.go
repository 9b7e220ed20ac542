package types

import "GrainMall/models"

type SubmitContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

type SubmitContactResponse struct {
	ID int64 `json:"id,string"`
}

type ListContactRequest struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

type ListContactResponse struct {
	Submissions []*models.ContactSubmission `json:"submissions"`
	Total       int64                       `json:"total"`
}
