package types

import "GrainMall/models"

type ListNotificationsRequest struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

type ListNotificationsResponse struct {
	Notifications []*models.Notification `json:"notifications"`
	Total         int64                  `json:"total"`
}

type MarkNotificationReadRequest struct {
	ID int64 `json:"id,string" binding:"required"`
}
