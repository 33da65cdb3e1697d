package repository

import (
	"time"

	"college_chat/internal/models"
	"college_chat/internal/storage"
)

// MessageRepository 提供訊息的持久化操作
// 訊息刪除為硬刪除，不保留墓碑記錄
type MessageRepository interface {
	Create(message *models.Message) error
	FindByID(id uint) (*models.Message, error)
	FindRecentByRoom(room string, limit int) ([]models.Message, error)
	FindRecent(limit int) ([]models.Message, error)
	FindByRoom(room string, limit int) ([]models.Message, error)
	FindByPhone(phone string) ([]models.Message, error)
	DeleteByID(id uint) (bool, error)
	CountAll() (int64, error)
	DeleteAll() (int64, error)
	DeleteByRoomType(roomType string) (int64, error)
	DeleteOlderThan(cutoff time.Time) (int64, error)
}

type messageRepository struct {
	db *storage.PostgresDB
}

func NewMessageRepository(db *storage.PostgresDB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(message *models.Message) error {
	return r.db.Create(message).Error
}

func (r *messageRepository) FindByID(id uint) (*models.Message, error) {
	var message models.Message
	err := r.db.First(&message, id).Error
	if err != nil {
		return nil, err
	}
	return &message, nil
}

// FindRecentByRoom 取指定房間最新的 limit 則訊息，按時間由舊到新排列
func (r *messageRepository) FindRecentByRoom(room string, limit int) ([]models.Message, error) {
	var messages []models.Message
	err := r.db.Where("room = ?", room).
		Order("timestamp DESC").Limit(limit).Find(&messages).Error
	if err != nil {
		return nil, err
	}
	// 查詢按時間倒序取最新的 limit 則，這裡反轉回時間順序
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages, nil
}

func (r *messageRepository) FindRecent(limit int) ([]models.Message, error) {
	var messages []models.Message
	err := r.db.Order("timestamp DESC").Limit(limit).Find(&messages).Error
	return messages, err
}

func (r *messageRepository) FindByRoom(room string, limit int) ([]models.Message, error) {
	var messages []models.Message
	err := r.db.Where("room = ?", room).
		Order("timestamp DESC").Limit(limit).Find(&messages).Error
	return messages, err
}

func (r *messageRepository) FindByPhone(phone string) ([]models.Message, error) {
	var messages []models.Message
	err := r.db.Where("sender_phone = ?", phone).
		Order("timestamp DESC").Find(&messages).Error
	return messages, err
}

// DeleteByID 刪除指定訊息，回傳是否確實刪除了一筆記錄
// 兩個併發的刪除請求只會有一個拿到 true，另一個視為訊息不存在
func (r *messageRepository) DeleteByID(id uint) (bool, error) {
	result := r.db.Delete(&models.Message{}, id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *messageRepository) CountAll() (int64, error) {
	var count int64
	err := r.db.Model(&models.Message{}).Count(&count).Error
	return count, err
}

func (r *messageRepository) DeleteAll() (int64, error) {
	result := r.db.Where("1 = 1").Delete(&models.Message{})
	return result.RowsAffected, result.Error
}

func (r *messageRepository) DeleteByRoomType(roomType string) (int64, error) {
	result := r.db.Where("room_type = ?", roomType).Delete(&models.Message{})
	return result.RowsAffected, result.Error
}

func (r *messageRepository) DeleteOlderThan(cutoff time.Time) (int64, error) {
	result := r.db.Where("timestamp < ?", cutoff).Delete(&models.Message{})
	return result.RowsAffected, result.Error
}
