package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"college_chat/internal/api/handlers"
	"college_chat/internal/config"
	"college_chat/internal/middleware"
	"college_chat/internal/service"
)

func SetupRoutes(r *gin.Engine, services *service.Services, cfg *config.Config) {
	// 初始化 handlers
	otpHandler := handlers.NewOTPHandler(services.User)
	feedbackHandler := handlers.NewFeedbackHandler(services.Feedback)
	adminHandler := handlers.NewAdminHandler(services.Admin)
	wsHandler := handlers.NewWebSocketHandler(services.WebSocket)

	adminAuth := middleware.AdminAuth(cfg.Admin.PasswordHash)

	// API 路由群組
	api := r.Group("/api")

	// 處理 404 錯誤
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "找不到該路徑",
		})
	})

	// 公開路由
	{
		// 基本的健康檢查
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"status": "ok",
			})
		})

		// 手機驗證碼登入
		api.POST("/otp/send", otpHandler.Send)
		api.POST("/otp/verify", otpHandler.Verify)

		// 意見回饋，訪客也可提交
		api.POST("/feedback/submit", feedbackHandler.Submit)
	}

	// 管理端路由，以 password 標頭驗證
	admin := api.Group("/admin")
	admin.Use(adminAuth)
	{
		admin.GET("/users", adminHandler.Users)
		admin.GET("/messages", adminHandler.Messages)
		admin.GET("/messages/:room", adminHandler.Messages)
		admin.GET("/user/:phone", adminHandler.UserByPhone)
		admin.GET("/stats", adminHandler.Stats)

		// 批次清理
		admin.DELETE("/messages/clear-all", adminHandler.ClearAllMessages)
		admin.DELETE("/messages/clear/:roomType", adminHandler.ClearMessagesByRoomType)
		admin.DELETE("/messages/clear-old/:days", adminHandler.ClearOldMessages)
	}

	// 回饋的管理端檢視
	api.GET("/feedback/all", adminAuth, feedbackHandler.List)
	api.PUT("/feedback/:id/status", adminAuth, feedbackHandler.UpdateStatus)

	// WebSocket 連接點，需攜帶會話 token
	r.GET("/ws", middleware.AuthMiddleware(), wsHandler.HandleWebSocket)

	// 靜態頁面
	r.Static("/public", "./public")
	r.StaticFile("/", "./public/index.html")
	r.StaticFile("/chat", "./public/chat.html")
	r.StaticFile("/admin", "./public/admin.html")
}
