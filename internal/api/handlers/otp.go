package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"college_chat/internal/service"
)

// OTPHandler 處理手機驗證碼登入
type OTPHandler struct {
	userService *service.UserService
}

// NewOTPHandler 創建一個新的 OTPHandler 實例
func NewOTPHandler(userService *service.UserService) *OTPHandler {
	return &OTPHandler{userService: userService}
}

// SendInput 定義發送驗證碼請求的結構
type SendInput struct {
	PhoneNumber string `json:"phoneNumber" binding:"required"`
}

// VerifyInput 定義驗證登入請求的結構
type VerifyInput struct {
	PhoneNumber string `json:"phoneNumber" binding:"required"`
	OTP         string `json:"otp" binding:"required"`
	Year        string `json:"year"`
	Branch      string `json:"branch"`
	Division    string `json:"division"`
}

// Send 處理發送驗證碼
func (h *OTPHandler) Send(c *gin.Context) {
	var input SendInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	code, err := h.userService.SendOTP(c.Request.Context(), input.PhoneNumber)
	if err != nil {
		if errors.Is(err, service.ErrInvalidPhone) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid phone number"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to send OTP"})
		return
	}

	// 開發環境把驗證碼帶回響應，正式環境應改由簡訊送出
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "OTP sent successfully", "otp": code})
}

// Verify 處理驗證碼登入，成功時回傳用戶資料與會話 token
func (h *OTPHandler) Verify(c *gin.Context) {
	var input VerifyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	user, token, err := h.userService.VerifyOTP(c.Request.Context(),
		input.PhoneNumber, input.OTP, input.Year, input.Branch, input.Division)
	if err != nil {
		if errors.Is(err, service.ErrInvalidOTP) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid OTP"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to verify OTP"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    user,
		"token":   token,
	})
}
