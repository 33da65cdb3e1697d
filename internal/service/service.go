package service

import (
	"time"

	"college_chat/internal/repository"
)

type Services struct {
	User      *UserService
	Chat      *ChatService
	Feedback  *FeedbackService
	Admin     *AdminService
	WebSocket *WebSocketManager
}

// Options 彙整服務層的可調參數
type Options struct {
	OTPTTL             time.Duration
	RecentMessageLimit int
}

func NewServices(repos *repository.Repositories, otpStore OTPStore, opts Options) *Services {
	chatService := NewChatService(repos.User, repos.Message)
	wsManager := NewWebSocketManager(chatService, repos.User, opts.RecentMessageLimit)

	return &Services{
		User:      NewUserService(repos.User, otpStore, opts.OTPTTL),
		Chat:      chatService,
		Feedback:  NewFeedbackService(repos.Feedback, repos.User),
		Admin:     NewAdminService(repos.User, repos.Message),
		WebSocket: wsManager,
	}
}
