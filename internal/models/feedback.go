package models

import "time"

// FeedbackType 與 FeedbackStatus 的合法值
const (
	FeedbackTypeBug         = "bug"
	FeedbackTypeFeature     = "feature"
	FeedbackTypeImprovement = "improvement"
	FeedbackTypeOther       = "other"

	FeedbackStatusNew      = "new"
	FeedbackStatusReviewed = "reviewed"
	FeedbackStatusResolved = "resolved"
)

// Feedback 代表用戶提交的意見回饋
// 用戶資訊為選填，提交當下快照保存
type Feedback struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	UserID       uint      `json:"userId,omitempty"`
	UserPhone    string    `json:"userPhone,omitempty"`
	UserNickname string    `json:"userNickname,omitempty"`
	UserAvatar   string    `json:"userAvatar,omitempty"`
	Type         string    `gorm:"not null;default:other" json:"type"`
	Message      string    `gorm:"type:text;not null" json:"message"`
	Status       string    `gorm:"not null;default:new" json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
}
