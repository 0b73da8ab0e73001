package admin

import (
	"net/http"
	"strconv"

	"kalam-platform/database"
	"kalam-platform/internal/api/httperr"
	"kalam-platform/internal/domain/identity"
	"kalam-platform/internal/domain/kalam"
	"kalam-platform/internal/domain/profiles"

	"github.com/gin-gonic/gin"
)

type AdminUser struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	Country    string `json:"country"`
	City       string `json:"city"`
	IsVerified bool   `json:"is_verified"`
}

type VocalistStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// GET /admin/users
func ListAllUsers(c *gin.Context) {
	var all []identity.User
	if err := database.DB.Order("created_at DESC").Find(&all).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load users"})
		return
	}

	out := make([]AdminUser, 0, len(all))
	for _, u := range all {
		out = append(out, AdminUser{
			ID:         u.ID,
			Name:       u.Name,
			Email:      u.Email,
			Role:       string(u.Role),
			Country:    u.Country,
			City:       u.City,
			IsVerified: u.IsVerified,
		})
	}

	c.JSON(http.StatusOK, out)
}

// GET /admin/submissions
func ListAllSubmissions(c *gin.Context) {
	var subs []kalam.Submission
	if err := database.DB.Order("updated_at DESC").Find(&subs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load submissions"})
		return
	}
	c.JSON(http.StatusOK, subs)
}

// GET /admin/writers
func ListWriters(c *gin.Context) {
	offset, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	registry := profiles.NewRegistry(database.DB)
	out, err := registry.ListWriters(c.Request.Context(), offset, limit)
	if err != nil {
		httperr.Write(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// PATCH /admin/vocalists/:vocalist_id/status
func UpdateVocalistStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("vocalist_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid vocalist id"})
		return
	}

	var input VocalistStatusRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	registry := profiles.NewRegistry(database.DB)
	if err := registry.SetVocalistStatus(c.Request.Context(), uint(id), input.Status); err != nil {
		httperr.Write(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Vocalist profile " + input.Status + " successfully"})
}
