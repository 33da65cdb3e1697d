package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"college_chat/internal/service"
)

// AdminHandler 處理管理面板的查詢與批次清理
type AdminHandler struct {
	adminService *service.AdminService
}

// NewAdminHandler 創建一個新的 AdminHandler 實例
func NewAdminHandler(adminService *service.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

// Users 列出所有用戶
func (h *AdminHandler) Users(c *gin.Context) {
	users, err := h.adminService.Users()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "users": users})
}

// Messages 列出最新訊息，可用路徑參數限定房間
func (h *AdminHandler) Messages(c *gin.Context) {
	messages, err := h.adminService.RecentMessages(c.Param("room"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "messages": messages})
}

// UserByPhone 以手機號碼查用戶及其訊息
func (h *AdminHandler) UserByPhone(c *gin.Context) {
	user, messages, err := h.adminService.UserByPhone(c.Param("phone"))
	if err != nil {
		if errors.Is(err, service.ErrUnknownUser) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "user": user, "messages": messages})
}

// Stats 回傳整體統計
func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.adminService.Stats()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "stats": stats})
}

// ClearAllMessages 清空所有訊息
func (h *AdminHandler) ClearAllMessages(c *gin.Context) {
	deleted, err := h.adminService.ClearAllMessages()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": fmt.Sprintf("Deleted %d messages", deleted)})
}

// ClearMessagesByRoomType 清空指定房間類型的訊息
func (h *AdminHandler) ClearMessagesByRoomType(c *gin.Context) {
	roomType := c.Param("roomType")
	deleted, err := h.adminService.ClearMessagesByRoomType(roomType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": fmt.Sprintf("Deleted %d messages from %s", deleted, roomType),
	})
}

// ClearOldMessages 清空早於 N 天前的訊息
func (h *AdminHandler) ClearOldMessages(c *gin.Context) {
	days, err := strconv.Atoi(c.Param("days"))
	if err != nil || days < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid number of days"})
		return
	}

	deleted, err := h.adminService.ClearMessagesOlderThan(days)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": fmt.Sprintf("Deleted %d messages older than %d days", deleted, days),
	})
}
