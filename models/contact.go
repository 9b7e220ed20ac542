package models

import "time"

// ContactSubmission 联系我们表单
type ContactSubmission struct {
	ID          int64      `gorm:"primaryKey;column:id" json:"id,string"`
	Name        string     `gorm:"size:255;not null;column:name" json:"name"`
	Email       string     `gorm:"size:320;not null;column:email" json:"email"`
	Phone       string     `gorm:"size:20;column:phone" json:"phone"`
	Subject     string     `gorm:"size:255;not null;column:subject" json:"subject"`
	Message     string     `gorm:"type:text;not null;column:message" json:"message"`
	Status      string     `gorm:"type:enum('new','read','responded','closed');default:'new';column:status" json:"status"`
	Response    string     `gorm:"type:text;column:response" json:"response"`
	RespondedBy string     `gorm:"size:64;column:responded_by" json:"responded_by"`
	RespondedAt *time.Time `gorm:"column:responded_at" json:"responded_at"`
	CreatedAt   time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (ContactSubmission) TableName() string {
	return "contact_submissions"
}
