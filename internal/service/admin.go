package service

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"college_chat/internal/models"
	"college_chat/internal/repository"
)

// adminMessageLimit 為管理端訊息列表的固定上限
const adminMessageLimit = 100

// Stats 是管理面板用的整體統計
type Stats struct {
	TotalUsers    int64 `json:"totalUsers"`
	OnlineUsers   int64 `json:"onlineUsers"`
	TotalMessages int64 `json:"totalMessages"`
}

// AdminService 提供管理面板的查詢與批次清理
// 訊息列表沿用發送時的身份快照，不回頭連接即時的用戶記錄
type AdminService struct {
	userRepo    repository.UserRepository
	messageRepo repository.MessageRepository
}

func NewAdminService(userRepo repository.UserRepository, messageRepo repository.MessageRepository) *AdminService {
	return &AdminService{
		userRepo:    userRepo,
		messageRepo: messageRepo,
	}
}

// Users 依最後登入時間列出所有用戶
func (s *AdminService) Users() ([]models.User, error) {
	return s.userRepo.FindAll()
}

// RecentMessages 列出最新的訊息，room 為空時跨所有房間
func (s *AdminService) RecentMessages(room string) ([]models.Message, error) {
	if room == "" {
		return s.messageRepo.FindRecent(adminMessageLimit)
	}
	return s.messageRepo.FindByRoom(room, adminMessageLimit)
}

// UserByPhone 以手機號碼查用戶及其發過的所有訊息
func (s *AdminService) UserByPhone(phone string) (*models.User, []models.Message, error) {
	user, err := s.userRepo.FindByPhone(phone)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, ErrUnknownUser
	}
	if err != nil {
		return nil, nil, err
	}

	messages, err := s.messageRepo.FindByPhone(phone)
	if err != nil {
		return nil, nil, err
	}
	return user, messages, nil
}

// Stats 回傳用戶與訊息的整體統計
func (s *AdminService) Stats() (*Stats, error) {
	totalUsers, err := s.userRepo.CountAll()
	if err != nil {
		return nil, err
	}
	onlineUsers, err := s.userRepo.CountOnline()
	if err != nil {
		return nil, err
	}
	totalMessages, err := s.messageRepo.CountAll()
	if err != nil {
		return nil, err
	}

	return &Stats{
		TotalUsers:    totalUsers,
		OnlineUsers:   onlineUsers,
		TotalMessages: totalMessages,
	}, nil
}

// ClearAllMessages 清空所有訊息，回傳刪除筆數
func (s *AdminService) ClearAllMessages() (int64, error) {
	return s.messageRepo.DeleteAll()
}

// ClearMessagesByRoomType 清空指定房間類型的訊息
func (s *AdminService) ClearMessagesByRoomType(roomType string) (int64, error) {
	return s.messageRepo.DeleteByRoomType(roomType)
}

// ClearMessagesOlderThan 清空早於 N 天前的訊息
func (s *AdminService) ClearMessagesOlderThan(days int) (int64, error) {
	cutoff := time.Now().AddDate(0, 0, -days)
	return s.messageRepo.DeleteOlderThan(cutoff)
}
