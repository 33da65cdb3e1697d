package repository

import (
	"time"

	"college_chat/internal/models"
	"college_chat/internal/storage"
)

// UserRepository 提供用戶目錄的查詢與更新
type UserRepository interface {
	Create(user *models.User) error
	Update(user *models.User) error
	FindByID(id uint) (*models.User, error)
	FindByPhone(phone string) (*models.User, error)
	FindAll() ([]models.User, error)
	SetOnline(id uint, online bool) error
	CountAll() (int64, error)
	CountOnline() (int64, error)
}

type userRepository struct {
	db *storage.PostgresDB
}

func NewUserRepository(db *storage.PostgresDB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

func (r *userRepository) Update(user *models.User) error {
	return r.db.Save(user).Error
}

func (r *userRepository) FindByID(id uint) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByPhone(phone string) (*models.User, error) {
	var user models.User
	err := r.db.Where("phone_number = ?", phone).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindAll 依最後登入時間由新到舊列出所有用戶
func (r *userRepository) FindAll() ([]models.User, error) {
	var users []models.User
	err := r.db.Order("last_login DESC").Find(&users).Error
	return users, err
}

func (r *userRepository) SetOnline(id uint, online bool) error {
	return r.db.Model(&models.User{}).Where("id = ?", id).
		Updates(map[string]interface{}{"is_online": online, "last_login": time.Now()}).Error
}

func (r *userRepository) CountAll() (int64, error) {
	var count int64
	err := r.db.Model(&models.User{}).Count(&count).Error
	return count, err
}

func (r *userRepository) CountOnline() (int64, error) {
	var count int64
	err := r.db.Model(&models.User{}).Where("is_online = ?", true).Count(&count).Error
	return count, err
}
