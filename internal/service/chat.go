package service

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"gorm.io/gorm"

	"college_chat/internal/models"
	"college_chat/internal/repository"
)

// ChatService 負責訊息生命週期：建立、刪除與歷史載入
// 發送者的顯示身份在建立當下向用戶目錄取得並快照進訊息
type ChatService struct {
	userRepo    repository.UserRepository
	messageRepo repository.MessageRepository
	maxLength   int
}

func NewChatService(userRepo repository.UserRepository, messageRepo repository.MessageRepository) *ChatService {
	return &ChatService{
		userRepo:    userRepo,
		messageRepo: messageRepo,
		maxLength:   models.MaxMessageLength,
	}
}

// CreateMessage 驗證訊息內容並持久化
// 用戶 ID 解析不到回傳 ErrUnknownUser，內容為空或過長回傳 ErrInvalidMessage
func (s *ChatService) CreateMessage(userID uint, room models.RoomKey, body string) (*models.Message, error) {
	body = strings.TrimSpace(body)
	if body == "" || utf8.RuneCountInString(body) > s.maxLength {
		return nil, ErrInvalidMessage
	}

	user, err := s.userRepo.FindByID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUnknownUser
	}
	if err != nil {
		return nil, fmt.Errorf("load user %d: %w", userID, err)
	}

	message := &models.Message{
		Room:           room.String(),
		Year:           room.Year,
		Branch:         room.Branch,
		Division:       room.Division,
		RoomType:       room.RoomType,
		UserID:         user.ID,
		SenderPhone:    user.PhoneNumber,
		SenderNickname: user.Nickname,
		SenderAvatar:   user.Avatar,
		Body:           body,
		Timestamp:      time.Now(),
	}

	if err := s.messageRepo.Create(message); err != nil {
		return nil, fmt.Errorf("save message: %w", err)
	}
	return message, nil
}

// DeleteMessage 只有作者本人能刪除自己的訊息
// 刪除以資料列實際消失為準，兩個競爭的刪除請求
// 只會有一個成功，另一個會看到 ErrMessageNotFound
func (s *ChatService) DeleteMessage(userID, messageID uint) error {
	message, err := s.messageRepo.FindByID(messageID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrMessageNotFound
	}
	if err != nil {
		return fmt.Errorf("load message %d: %w", messageID, err)
	}

	if message.UserID != userID {
		return ErrNotAuthorized
	}

	deleted, err := s.messageRepo.DeleteByID(messageID)
	if err != nil {
		return fmt.Errorf("delete message %d: %w", messageID, err)
	}
	if !deleted {
		return ErrMessageNotFound
	}
	return nil
}

// RecentMessages 取房間最近的訊息，按時間由舊到新
func (s *ChatService) RecentMessages(room string, limit int) ([]models.Message, error) {
	messages, err := s.messageRepo.FindRecentByRoom(room, limit)
	if err != nil {
		return nil, fmt.Errorf("load recent messages for %s: %w", room, err)
	}
	return messages, nil
}
