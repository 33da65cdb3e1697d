package service

import "errors"

// 領域錯誤只會以私人 error 事件回給發起的連線，永不廣播，
// 也不會終止連線本身
var (
	ErrUnknownUser     = errors.New("user not found")
	ErrInvalidMessage  = errors.New("message is empty or too long")
	ErrMessageNotFound = errors.New("message not found")
	ErrNotAuthorized   = errors.New("not allowed to delete this message")
	ErrNotInRoom       = errors.New("join a room first")
	ErrInvalidRoom     = errors.New("room key is incomplete")
	ErrInvalidPayload  = errors.New("invalid event payload")
	ErrInvalidPhone    = errors.New("invalid phone number")
	ErrInvalidOTP      = errors.New("invalid or expired otp")
	ErrInvalidFeedback = errors.New("feedback message is required")
)

// IsDomainError 區分可以直接回給用戶的領域錯誤與需要記錄的系統錯誤
func IsDomainError(err error) bool {
	for _, domain := range []error{
		ErrUnknownUser, ErrInvalidMessage, ErrMessageNotFound,
		ErrNotAuthorized, ErrNotInRoom, ErrInvalidRoom,
		ErrInvalidPayload, ErrInvalidPhone, ErrInvalidOTP, ErrInvalidFeedback,
	} {
		if errors.Is(err, domain) {
			return true
		}
	}
	return false
}
