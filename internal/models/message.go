package models

import "time"

// MaxMessageLength 為單則訊息的最大長度（以字元計）
const MaxMessageLength = 1000

// Message 代表一則聊天室訊息
// 發送者的暱稱與頭像在發送當下快照保存，
// 之後用戶更換暱稱不會影響歷史訊息的顯示
type Message struct {
	ID             uint      `gorm:"primarykey" json:"id"`
	Room           string    `gorm:"index:idx_messages_room_ts,priority:1;not null" json:"room"`
	Year           string    `json:"year,omitempty"`
	Branch         string    `json:"branch,omitempty"`
	Division       string    `json:"division,omitempty"`
	RoomType       string    `gorm:"index" json:"roomType,omitempty"`
	UserID         uint      `gorm:"index;not null" json:"userId"`
	SenderPhone    string    `gorm:"index" json:"-"`
	SenderNickname string    `gorm:"not null" json:"nickname"`
	SenderAvatar   string    `gorm:"not null" json:"avatar"`
	Body           string    `gorm:"type:text;not null" json:"message"`
	Timestamp      time.Time `gorm:"index:idx_messages_room_ts,priority:2" json:"timestamp"`
}
