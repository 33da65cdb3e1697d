package service

import (
	"context"
	"sync"
	"time"

	"gorm.io/gorm"

	"college_chat/internal/models"
)

// fakeUserRepo 是測試用的記憶體用戶目錄
type fakeUserRepo struct {
	mu     sync.Mutex
	nextID uint
	users  map[uint]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uint]*models.User)}
}

func (f *fakeUserRepo) Create(user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	user.ID = f.nextID
	clone := *user
	f.users[user.ID] = &clone
	return nil
}

func (f *fakeUserRepo) Update(user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	clone := *user
	f.users[user.ID] = &clone
	return nil
}

func (f *fakeUserRepo) FindByID(id uint) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *user
	return &clone, nil
}

func (f *fakeUserRepo) FindByPhone(phone string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, user := range f.users {
		if user.PhoneNumber == phone {
			clone := *user
			return &clone, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) FindAll() ([]models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	users := make([]models.User, 0, len(f.users))
	for _, user := range f.users {
		users = append(users, *user)
	}
	return users, nil
}

func (f *fakeUserRepo) SetOnline(id uint, online bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if user, ok := f.users[id]; ok {
		user.IsOnline = online
		user.LastLogin = time.Now()
	}
	return nil
}

func (f *fakeUserRepo) CountAll() (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.users)), nil
}

func (f *fakeUserRepo) CountOnline() (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var count int64
	for _, user := range f.users {
		if user.IsOnline {
			count++
		}
	}
	return count, nil
}

// fakeMessageRepo 是測試用的記憶體訊息存放
type fakeMessageRepo struct {
	mu       sync.Mutex
	nextID   uint
	messages map[uint]*models.Message
	order    []uint // 依寫入順序保存 ID
}

func newFakeMessageRepo() *fakeMessageRepo {
	return &fakeMessageRepo{messages: make(map[uint]*models.Message)}
}

func (f *fakeMessageRepo) Create(message *models.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	message.ID = f.nextID
	clone := *message
	f.messages[message.ID] = &clone
	f.order = append(f.order, message.ID)
	return nil
}

func (f *fakeMessageRepo) FindByID(id uint) (*models.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	message, ok := f.messages[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *message
	return &clone, nil
}

func (f *fakeMessageRepo) FindRecentByRoom(room string, limit int) ([]models.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []models.Message
	for _, id := range f.order {
		if message, ok := f.messages[id]; ok && message.Room == room {
			result = append(result, *message)
		}
	}
	if len(result) > limit {
		result = result[len(result)-limit:]
	}
	return result, nil
}

func (f *fakeMessageRepo) FindRecent(limit int) ([]models.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []models.Message
	for i := len(f.order) - 1; i >= 0 && len(result) < limit; i-- {
		if message, ok := f.messages[f.order[i]]; ok {
			result = append(result, *message)
		}
	}
	return result, nil
}

func (f *fakeMessageRepo) FindByRoom(room string, limit int) ([]models.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []models.Message
	for i := len(f.order) - 1; i >= 0 && len(result) < limit; i-- {
		if message, ok := f.messages[f.order[i]]; ok && message.Room == room {
			result = append(result, *message)
		}
	}
	return result, nil
}

func (f *fakeMessageRepo) FindByPhone(phone string) ([]models.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []models.Message
	for i := len(f.order) - 1; i >= 0; i-- {
		if message, ok := f.messages[f.order[i]]; ok && message.SenderPhone == phone {
			result = append(result, *message)
		}
	}
	return result, nil
}

func (f *fakeMessageRepo) DeleteByID(id uint) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.messages[id]; !ok {
		return false, nil
	}
	delete(f.messages, id)
	return true, nil
}

func (f *fakeMessageRepo) CountAll() (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.messages)), nil
}

func (f *fakeMessageRepo) DeleteAll() (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	deleted := int64(len(f.messages))
	f.messages = make(map[uint]*models.Message)
	f.order = nil
	return deleted, nil
}

func (f *fakeMessageRepo) DeleteByRoomType(roomType string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var deleted int64
	for id, message := range f.messages {
		if message.RoomType == roomType {
			delete(f.messages, id)
			deleted++
		}
	}
	return deleted, nil
}

func (f *fakeMessageRepo) DeleteOlderThan(cutoff time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var deleted int64
	for id, message := range f.messages {
		if message.Timestamp.Before(cutoff) {
			delete(f.messages, id)
			deleted++
		}
	}
	return deleted, nil
}

// fakeFeedbackRepo 是測試用的記憶體回饋存放
type fakeFeedbackRepo struct {
	mu        sync.Mutex
	nextID    uint
	feedbacks []models.Feedback
}

func newFakeFeedbackRepo() *fakeFeedbackRepo {
	return &fakeFeedbackRepo{}
}

func (f *fakeFeedbackRepo) Create(feedback *models.Feedback) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	feedback.ID = f.nextID
	f.feedbacks = append(f.feedbacks, *feedback)
	return nil
}

func (f *fakeFeedbackRepo) FindAll(limit int) ([]models.Feedback, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []models.Feedback
	for i := len(f.feedbacks) - 1; i >= 0 && len(result) < limit; i-- {
		result = append(result, f.feedbacks[i])
	}
	return result, nil
}

func (f *fakeFeedbackRepo) UpdateStatus(id uint, status string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.feedbacks {
		if f.feedbacks[i].ID == id {
			f.feedbacks[i].Status = status
		}
	}
	return nil
}

// fakeOTPStore 是測試用的記憶體驗證碼存放
type fakeOTPStore struct {
	mu    sync.Mutex
	codes map[string]string
}

func newFakeOTPStore() *fakeOTPStore {
	return &fakeOTPStore{codes: make(map[string]string)}
}

func (f *fakeOTPStore) Set(_ context.Context, phone, code string, _ time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.codes[phone] = code
	return nil
}

func (f *fakeOTPStore) Get(_ context.Context, phone string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.codes[phone], nil
}

func (f *fakeOTPStore) Delete(_ context.Context, phone string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.codes, phone)
	return nil
}
