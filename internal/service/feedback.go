package service

import (
	"fmt"
	"log"
	"time"

	"college_chat/internal/models"
	"college_chat/internal/repository"
)

// FeedbackService 處理意見回饋的提交與管理端檢視
type FeedbackService struct {
	feedbackRepo repository.FeedbackRepository
	userRepo     repository.UserRepository
}

func NewFeedbackService(feedbackRepo repository.FeedbackRepository, userRepo repository.UserRepository) *FeedbackService {
	return &FeedbackService{
		feedbackRepo: feedbackRepo,
		userRepo:     userRepo,
	}
}

// Submit 儲存一筆回饋，userID 為選填
// 查得到用戶就附上身份快照，查不到仍照常保存
func (s *FeedbackService) Submit(userID uint, feedbackType, message string) (*models.Feedback, error) {
	if message == "" {
		return nil, ErrInvalidFeedback
	}

	switch feedbackType {
	case models.FeedbackTypeBug, models.FeedbackTypeFeature, models.FeedbackTypeImprovement:
	default:
		feedbackType = models.FeedbackTypeOther
	}

	feedback := &models.Feedback{
		Type:      feedbackType,
		Message:   message,
		Status:    models.FeedbackStatusNew,
		CreatedAt: time.Now(),
	}

	if userID != 0 {
		if user, err := s.userRepo.FindByID(userID); err == nil {
			feedback.UserID = user.ID
			feedback.UserPhone = user.PhoneNumber
			feedback.UserNickname = user.Nickname
			feedback.UserAvatar = user.Avatar
		} else {
			log.Printf("feedback: user %d not found, saving anyway", userID)
		}
	}

	if err := s.feedbackRepo.Create(feedback); err != nil {
		return nil, fmt.Errorf("save feedback: %w", err)
	}
	return feedback, nil
}

// List 依建立時間由新到舊列出回饋
func (s *FeedbackService) List(limit int) ([]models.Feedback, error) {
	if limit <= 0 {
		limit = 100
	}
	return s.feedbackRepo.FindAll(limit)
}

// UpdateStatus 更新回饋的處理狀態
func (s *FeedbackService) UpdateStatus(id uint, status string) error {
	switch status {
	case models.FeedbackStatusNew, models.FeedbackStatusReviewed, models.FeedbackStatusResolved:
	default:
		return ErrInvalidPayload
	}
	return s.feedbackRepo.UpdateStatus(id, status)
}
