package writers

import (
	"net/http"
	"strconv"

	"kalam-platform/database"
	"kalam-platform/internal/api/httperr"
	"kalam-platform/internal/domain/identity"
	"kalam-platform/internal/domain/profiles"

	"github.com/gin-gonic/gin"
)

type SubmitProfileRequest struct {
	WritingStyles        string `json:"writing_styles"`
	Languages            string `json:"languages"`
	SampleTitle          string `json:"sample_title"`
	ExperienceBackground string `json:"experience_background"`
	Portfolio            string `json:"portfolio"`
	Availability         string `json:"availability"`
}

// POST /writers/submit
func SubmitProfile(c *gin.Context) {
	userID := c.GetUint("user_id")

	var input SubmitProfileRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	registry := profiles.NewRegistry(database.DB)
	profile, err := registry.UpsertWriter(c.Request.Context(), profiles.WriterProfile{
		UserID:               userID,
		WritingStyles:        input.WritingStyles,
		Languages:            input.Languages,
		SampleTitle:          input.SampleTitle,
		ExperienceBackground: input.ExperienceBackground,
		Portfolio:            input.Portfolio,
		Availability:         input.Availability,
	})
	if err != nil {
		httperr.Write(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Writer profile submitted successfully", "profile": profile})
}

// GET /writers/get/:writer_id
func GetProfile(c *gin.Context) {
	db := database.DB
	directory := identity.NewDirectory(db)
	registry := profiles.NewRegistry(db)

	actor, err := directory.Resolve(c.Request.Context(), c.GetUint("user_id"))
	if err != nil {
		httperr.Write(c, err)
		return
	}

	var targetID uint
	switch {
	case actor.Role.IsWriter():
		targetID = actor.ID
	case actor.Role.CanModerate():
		id, err := strconv.ParseUint(c.Param("writer_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid writer id"})
			return
		}
		targetID = uint(id)
	default:
		c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to view writer profiles"})
		return
	}

	profile, err := registry.GetWriter(c.Request.Context(), targetID)
	if err != nil {
		httperr.Write(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// GET /writers/is-registered
func IsRegistered(c *gin.Context) {
	registry := profiles.NewRegistry(database.DB)
	ok, err := registry.IsWriterRegistered(c.Request.Context(), c.GetUint("user_id"))
	if err != nil {
		httperr.Write(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"is_registered": ok})
}
