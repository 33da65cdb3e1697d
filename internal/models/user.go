package models

import "time"

// User 代表一位通過手機號碼驗證的匿名用戶
// 暱稱與頭像由系統隨機產生，聊天介面不會顯示手機號碼
type User struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	PhoneNumber string    `gorm:"uniqueIndex;not null" json:"-"` // 手機號碼僅供管理端追蹤，不對外序列化
	Nickname    string    `gorm:"not null" json:"nickname"`
	Avatar      string    `gorm:"not null" json:"avatar"`
	Year        string    `gorm:"index:idx_users_cohort" json:"year"`
	Branch      string    `gorm:"index:idx_users_cohort" json:"branch"`
	Division    string    `gorm:"index:idx_users_cohort" json:"division"`
	IsOnline    bool      `gorm:"default:false" json:"isOnline"`
	LastLogin   time.Time `json:"lastLogin"`
	CreatedAt   time.Time `json:"createdAt"`
}
