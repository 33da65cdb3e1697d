package repository

import "college_chat/internal/storage"

type Repositories struct {
	User     UserRepository
	Message  MessageRepository
	Feedback FeedbackRepository
}

func NewRepositories(db *storage.PostgresDB) *Repositories {
	return &Repositories{
		User:     NewUserRepository(db),
		Message:  NewMessageRepository(db),
		Feedback: NewFeedbackRepository(db),
	}
}
