package auth

import (
	"net/http"

	"kalam-platform/config"
	"kalam-platform/internal/domain/identity"

	"kalam-platform/database"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/gin-gonic/gin"
)

const googleIssuer = "https://accounts.google.com"

// GoogleAuth exchanges a Google ID token for platform tokens, creating
// the user on first sign-in. Role is required for signup only.
func GoogleAuth(c *gin.Context) {
	var input struct {
		Token string `json:"token" binding:"required"`
		Role  string `json:"role"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	provider, err := oidc.NewProvider(c.Request.Context(), googleIssuer)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reach Google"})
		return
	}

	verifier := provider.Verifier(&oidc.Config{ClientID: config.GOOGLE_CLIENT_ID})
	idToken, err := verifier.Verify(c.Request.Context(), input.Token)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid Google token"})
		return
	}

	var claims struct {
		Sub   string `json:"sub"`
		Email string `json:"email"`
		Name  string `json:"name"`
	}
	if err := idToken.Claims(&claims); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid Google token claims"})
		return
	}

	var user identity.User
	err = database.DB.Where("google_sub = ?", claims.Sub).First(&user).Error
	if err != nil {
		// fall back to email linking for accounts created locally
		err = database.DB.Where("email = ?", claims.Email).First(&user).Error
	}

	if err != nil {
		// signup path
		role, ok := identity.ParseRole(input.Role)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Role is required for Google signup"})
			return
		}
		if role.CanModerate() {
			c.JSON(http.StatusForbidden, gin.H{"error": "Cannot sign up as admin"})
			return
		}

		user = identity.User{
			Email:        claims.Email,
			Name:         claims.Name,
			AuthProvider: "google",
			GoogleSub:    &claims.Sub,
			Role:         role,
			IsVerified:   true,
		}
		if err := database.DB.Create(&user).Error; err != nil {
			c.JSON(http.StatusConflict, gin.H{"error": "Failed to create user"})
			return
		}
	} else if user.GoogleSub == nil {
		err := database.DB.Model(&user).Updates(map[string]any{
			"google_sub":  claims.Sub,
			"is_verified": true,
		}).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to link Google account"})
			return
		}
		user.IsVerified = true
	}

	tokenResponse(c, user)
}
