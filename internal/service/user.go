package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"time"

	"gorm.io/gorm"

	"college_chat/internal/models"
	"college_chat/internal/repository"
	"college_chat/internal/utils"
)

// OTPStore 保存一次性驗證碼，過期由儲存端的 TTL 控制
type OTPStore interface {
	Set(ctx context.Context, phone, code string, ttl time.Duration) error
	Get(ctx context.Context, phone string) (string, error)
	Delete(ctx context.Context, phone string) error
}

var nicknameAdjectives = []string{
	"Cool", "Swift", "Brave", "Bright", "Quick",
	"Smart", "Bold", "Calm", "Happy", "Lucky",
}

var nicknameNouns = []string{
	"Tiger", "Eagle", "Lion", "Panda", "Wolf",
	"Bear", "Fox", "Owl", "Hawk", "Deer",
}

var avatars = []string{
	"🦊", "🐼", "🦁", "🐯", "🐻", "🦅", "🦉", "🐺",
	"🦌", "🐱", "🐶", "🐸", "🐨", "🦝", "🦦",
}

// UserService 負責 OTP 登入流程與匿名身份的產生
type UserService struct {
	userRepo repository.UserRepository
	otpStore OTPStore
	otpTTL   time.Duration
}

func NewUserService(userRepo repository.UserRepository, otpStore OTPStore, otpTTL time.Duration) *UserService {
	if otpTTL <= 0 {
		otpTTL = 5 * time.Minute
	}
	return &UserService{
		userRepo: userRepo,
		otpStore: otpStore,
		otpTTL:   otpTTL,
	}
}

// SendOTP 產生六位數驗證碼並寫入帶 TTL 的儲存
// 正式環境應透過簡訊服務發送，這裡回傳驗證碼供開發測試使用
func (s *UserService) SendOTP(ctx context.Context, phone string) (string, error) {
	if len(phone) != 10 {
		return "", ErrInvalidPhone
	}

	code := fmt.Sprintf("%06d", rand.Intn(900000)+100000)
	if err := s.otpStore.Set(ctx, phone, code, s.otpTTL); err != nil {
		return "", fmt.Errorf("store otp: %w", err)
	}
	return code, nil
}

// VerifyOTP 驗證通過後建立或更新用戶，回傳用戶資料與會話 token
// 新用戶的暱稱與頭像隨機產生，手機號碼不會出現在聊天介面
func (s *UserService) VerifyOTP(ctx context.Context, phone, code, year, branch, division string) (*models.User, string, error) {
	stored, err := s.otpStore.Get(ctx, phone)
	if err != nil {
		return nil, "", fmt.Errorf("load otp: %w", err)
	}
	if stored == "" || stored != code {
		return nil, "", ErrInvalidOTP
	}

	user, err := s.userRepo.FindByPhone(phone)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		user = &models.User{
			PhoneNumber: phone,
			Nickname:    randomNickname(),
			Avatar:      randomAvatar(),
			Year:        year,
			Branch:      branch,
			Division:    division,
			IsOnline:    true,
			LastLogin:   time.Now(),
		}
		if err := s.userRepo.Create(user); err != nil {
			return nil, "", fmt.Errorf("create user: %w", err)
		}
	case err != nil:
		return nil, "", fmt.Errorf("load user by phone: %w", err)
	default:
		user.LastLogin = time.Now()
		user.IsOnline = true
		if err := s.userRepo.Update(user); err != nil {
			return nil, "", fmt.Errorf("update user: %w", err)
		}
	}

	if err := s.otpStore.Delete(ctx, phone); err != nil {
		// 驗證碼會自然過期，刪除失敗不擋登入
		log.Printf("delete otp for %s: %v", phone, err)
	}

	token, err := utils.GenerateToken(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("generate token: %w", err)
	}
	return user, token, nil
}

// FindByID 查詢用戶目錄中的顯示身份
func (s *UserService) FindByID(id uint) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUnknownUser
	}
	return user, err
}

func randomNickname() string {
	adjective := nicknameAdjectives[rand.Intn(len(nicknameAdjectives))]
	noun := nicknameNouns[rand.Intn(len(nicknameNouns))]
	return fmt.Sprintf("%s%s%d", adjective, noun, rand.Intn(99))
}

func randomAvatar() string {
	return avatars[rand.Intn(len(avatars))]
}
