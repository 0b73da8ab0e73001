package notifications

import (
	"net/http"
	"strconv"

	"kalam-platform/database"
	"kalam-platform/internal/api/httperr"
	"kalam-platform/internal/domain/identity"
	"kalam-platform/internal/domain/notify"

	"github.com/gin-gonic/gin"
)

type CreateNotificationRequest struct {
	Title         string `json:"title" binding:"required"`
	Message       string `json:"message" binding:"required"`
	TargetType    string `json:"target_type" binding:"required"`
	TargetUserIDs []uint `json:"target_user_ids"`
}

// POST /notifications
func Create(c *gin.Context) {
	var input CreateNotificationRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	service := notify.NewService(database.DB)
	n, err := service.Create(c.Request.Context(), input.Title, input.Message, input.TargetType, input.TargetUserIDs)
	if err != nil {
		httperr.Write(c, err)
		return
	}

	c.JSON(http.StatusOK, n)
}

// GET /notifications/user
func ListForUser(c *gin.Context) {
	db := database.DB
	directory := identity.NewDirectory(db)

	actor, err := directory.Resolve(c.Request.Context(), c.GetUint("user_id"))
	if err != nil {
		httperr.Write(c, err)
		return
	}

	out, err := notify.NewService(db).ListForUser(c.Request.Context(), actor.ID, actor.Role)
	if err != nil {
		httperr.Write(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"notifications": out})
}

// POST /notifications/read/:notification_id
func MarkRead(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("notification_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid notification id"})
		return
	}

	service := notify.NewService(database.DB)
	if err := service.MarkRead(c.Request.Context(), uint(id), c.GetUint("user_id")); err != nil {
		httperr.Write(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Notification marked as read"})
}
