package middleware

import (
	"net/http"

	"kalam-platform/database"
	"kalam-platform/internal/domain/identity"

	"github.com/gin-gonic/gin"
)

// RequireVerifiedUser blocks users who have not completed OTP email
// verification.
func RequireVerifiedUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("user_id")
		var user identity.User

		if err := database.DB.First(&user, userID).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "User not found",
			})
			return
		}

		if !user.IsVerified {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "Account not verified. Please verify your email first.",
			})
			return
		}

		c.Next()
	}
}
