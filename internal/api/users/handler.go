package users

import (
	"net/http"
	"strings"

	"kalam-platform/database"
	"kalam-platform/internal/domain/identity"
	"kalam-platform/internal/domain/outreach"

	"github.com/gin-gonic/gin"
)

type GuestPostRequest struct {
	Title    string   `json:"title" binding:"required"`
	Role     *string  `json:"role"`
	City     *string  `json:"city"`
	Country  *string  `json:"country"`
	Category *string  `json:"category"`
	Excerpt  *string  `json:"excerpt"`
	Content  *string  `json:"content"`
	Tags     []string `json:"tags"`
}

// GET /me
func GetCurrentUser(c *gin.Context) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var user identity.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":          user.ID,
		"email":       user.Email,
		"name":        user.Name,
		"role":        user.Role,
		"country":     user.Country,
		"city":        user.City,
		"is_verified": user.IsVerified,
	})
}

// POST /user/create-blog
func CreateGuestPost(c *gin.Context) {
	var input GuestPostRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post := outreach.GuestPost{
		UserID:   c.GetUint("user_id"),
		Title:    input.Title,
		Role:     input.Role,
		City:     input.City,
		Country:  input.Country,
		Category: input.Category,
		Excerpt:  input.Excerpt,
		Content:  input.Content,
		Tags:     strings.Join(input.Tags, ","),
	}

	if err := database.DB.Create(&post).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create guest post"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Guest post created successfully", "post_id": post.ID})
}

// GET /user/guest-blogs
func ListGuestPosts(c *gin.Context) {
	var posts []outreach.GuestPost
	err := database.DB.
		Where("user_id = ?", c.GetUint("user_id")).
		Order("created_at DESC").
		Find(&posts).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load guest posts"})
		return
	}

	c.JSON(http.StatusOK, posts)
}
