package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"college_chat/internal/service"
)

// FeedbackHandler 處理意見回饋的提交與管理端檢視
type FeedbackHandler struct {
	feedbackService *service.FeedbackService
}

// NewFeedbackHandler 創建一個新的 FeedbackHandler 實例
func NewFeedbackHandler(feedbackService *service.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{feedbackService: feedbackService}
}

// SubmitInput 定義提交回饋請求的結構，userId 為選填
type SubmitInput struct {
	UserID       uint   `json:"userId"`
	FeedbackType string `json:"feedbackType"`
	Message      string `json:"message" binding:"required"`
}

// Submit 儲存一筆回饋，未登入的訪客也可以提交
func (h *FeedbackHandler) Submit(c *gin.Context) {
	var input SubmitInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Message is required"})
		return
	}

	if _, err := h.feedbackService.Submit(input.UserID, input.FeedbackType, input.Message); err != nil {
		if errors.Is(err, service.ErrInvalidFeedback) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Message is required"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to save feedback"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Thank you for your feedback!"})
}

// List 列出回饋，僅供管理端
func (h *FeedbackHandler) List(c *gin.Context) {
	feedbacks, err := h.feedbackService.List(100)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch feedbacks"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "feedbacks": feedbacks})
}

// UpdateStatusInput 定義更新回饋狀態請求的結構
type UpdateStatusInput struct {
	Status string `json:"status" binding:"required"`
}

// UpdateStatus 更新回饋的處理狀態，僅供管理端
func (h *FeedbackHandler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid feedback id"})
		return
	}

	var input UpdateStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Status is required"})
		return
	}

	if err := h.feedbackService.UpdateStatus(uint(id), input.Status); err != nil {
		if errors.Is(err, service.ErrInvalidPayload) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid status"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update status"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Status updated"})
}
