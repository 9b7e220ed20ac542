package dao

import (
	"GrainMall/models"
	"context"

	"gorm.io/gorm"
)

type Contact struct {
	Repo[models.ContactSubmission]
}

func NewContact(db *gorm.DB) *Contact {
	return &Contact{
		Repo: NewRepo[models.ContactSubmission](db),
	}
}

func (c *Contact) List(ctx context.Context, limit, offset int) ([]*models.ContactSubmission, int64, error) {
	var total int64
	query := c.Db.WithContext(ctx).Model(&models.ContactSubmission{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var submissions []*models.ContactSubmission
	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&submissions).Error
	return submissions, total, err
}
