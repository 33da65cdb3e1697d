package repository

import (
	"college_chat/internal/models"
	"college_chat/internal/storage"
)

// FeedbackRepository 提供意見回饋的持久化操作
type FeedbackRepository interface {
	Create(feedback *models.Feedback) error
	FindAll(limit int) ([]models.Feedback, error)
	UpdateStatus(id uint, status string) error
}

type feedbackRepository struct {
	db *storage.PostgresDB
}

func NewFeedbackRepository(db *storage.PostgresDB) FeedbackRepository {
	return &feedbackRepository{db: db}
}

func (r *feedbackRepository) Create(feedback *models.Feedback) error {
	return r.db.Create(feedback).Error
}

// FindAll 依建立時間由新到舊列出回饋
func (r *feedbackRepository) FindAll(limit int) ([]models.Feedback, error) {
	var feedbacks []models.Feedback
	err := r.db.Order("created_at DESC").Limit(limit).Find(&feedbacks).Error
	return feedbacks, err
}

func (r *feedbackRepository) UpdateStatus(id uint, status string) error {
	return r.db.Model(&models.Feedback{}).Where("id = ?", id).
		Update("status", status).Error
}
