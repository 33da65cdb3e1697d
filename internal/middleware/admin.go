package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// AdminAuth 驗證管理端請求的 password 標頭
// 設定檔只保存 bcrypt 雜湊，比對失敗一律回 401
func AdminAuth(passwordHash string) gin.HandlerFunc {
	return func(c *gin.Context) {
		password := c.GetHeader("password")
		if passwordHash == "" || password == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
			c.Abort()
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password)); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
			c.Abort()
			return
		}

		c.Next()
	}
}
