package service

import (
	"encoding/json"
	"time"

	"college_chat/internal/models"
)

// 客戶端送入的事件識別碼
const (
	EventJoinRoom      = "join-room"
	EventSendMessage   = "send-message"
	EventDeleteMessage = "delete-message"
	EventLeaveRoom     = "leave-room"
	EventTypingStart   = "typing-start"
	EventTypingStop    = "typing-stop"
)

// 伺服器推送的事件識別碼
const (
	EventLoadMessages   = "load-messages"
	EventUserJoined     = "user-joined"
	EventUserLeft       = "user-left"
	EventNewMessage     = "new-message"
	EventMessageDeleted = "message-deleted"
	EventTypingState    = "typing-state"
	EventError          = "error"
)

// ClientEvent 是客戶端送入的事件封包
type ClientEvent struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// ServerEvent 是伺服器推送的事件封包
type ServerEvent struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

type JoinRoomData struct {
	UserID   uint   `json:"userId"`
	Year     string `json:"year"`
	Branch   string `json:"branch"`
	Division string `json:"division"`
	RoomType string `json:"roomType"`
}

type SendMessageData struct {
	Message string `json:"message"`
}

type DeleteMessageData struct {
	MessageID uint `json:"messageId"`
}

// PresenceData 隨加入與離開通知一起帶上房間當下的人數
type PresenceData struct {
	Message string `json:"message"`
	Online  int    `json:"online"`
}

type MessageData struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"userId"`
	Nickname  string    `json:"nickname"`
	Avatar    string    `json:"avatar"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

type MessageDeletedData struct {
	ID uint `json:"id"`
}

type TypingStateData struct {
	Typing []TypingEntry `json:"typing"`
}

type ErrorData struct {
	Message string `json:"message"`
}

func toMessageData(msg *models.Message) MessageData {
	return MessageData{
		ID:        msg.ID,
		UserID:    msg.UserID,
		Nickname:  msg.SenderNickname,
		Avatar:    msg.SenderAvatar,
		Message:   msg.Body,
		Timestamp: msg.Timestamp,
	}
}

func toMessageList(messages []models.Message) []MessageData {
	list := make([]MessageData, 0, len(messages))
	for i := range messages {
		list = append(list, toMessageData(&messages[i]))
	}
	return list
}
