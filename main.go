package main

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"college_chat/internal/api"
	"college_chat/internal/config"
	"college_chat/internal/models"
	"college_chat/internal/repository"
	"college_chat/internal/service"
	"college_chat/internal/storage"
	"college_chat/internal/utils"
)

func main() {
	// 載入 .env（若存在），環境變數可覆寫設定檔
	_ = godotenv.Load()

	// 載入應用程式配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	utils.SetJWTSecret(cfg.JWT.Secret)

	// 初始化資料庫連接
	db, err := storage.NewPostgresDB(cfg.DB.Host, cfg.DB.User, cfg.DB.Password, cfg.DB.Name, cfg.DB.Port)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// 自動遷移資料庫結構
	if err := db.AutoMigrate(&models.User{}, &models.Message{}, &models.Feedback{}); err != nil {
		log.Fatalf("Failed to auto migrate database: %v", err)
	}

	// OTP 驗證碼存放在 Redis，由 TTL 控制過期
	otpStore, err := storage.NewRedisOTPStore(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		log.Fatalf("Failed to connect to redis: %v", err)
	}
	defer otpStore.Close()

	// 初始化 repositories 與 services
	repos := repository.NewRepositories(db)
	services := service.NewServices(repos, otpStore, service.Options{
		OTPTTL:             time.Duration(cfg.Chat.OTPTTLMinutes) * time.Minute,
		RecentMessageLimit: cfg.Chat.RecentMessageLimit,
	})

	// 設置 Gin 路由
	r := gin.Default()
	api.SetupRoutes(r, services, cfg)

	// 啟動伺服器
	if err := r.Run(cfg.Server.Address); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
