package vocalists

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
	VocalRange           string `json:"vocal_range" binding:"required"`
	Languages            string `json:"languages" binding:"required"`
	SampleTitle          string `json:"sample_title" binding:"required"`
	AudioSampleURL       string `json:"audio_sample_url" binding:"required"`
	SampleDescription    string `json:"sample_description" binding:"required"`
	ExperienceBackground string `json:"experience_background" binding:"required"`
	Portfolio            string `json:"portfolio" binding:"required"`
	Availability         string `json:"availability" binding:"required"`
}

// POST /vocalists/submit
func SubmitProfile(c *gin.Context) {
	userID := c.GetUint("user_id")

	var input SubmitProfileRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	registry := profiles.NewRegistry(database.DB)
	profile, err := registry.UpsertVocalist(c.Request.Context(), profiles.VocalistProfile{
		UserID:               userID,
		VocalRange:           input.VocalRange,
		Languages:            input.Languages,
		SampleTitle:          input.SampleTitle,
		AudioSampleURL:       input.AudioSampleURL,
		SampleDescription:    input.SampleDescription,
		ExperienceBackground: input.ExperienceBackground,
		Portfolio:            input.Portfolio,
		Availability:         input.Availability,
	})
	if err != nil {
		httperr.Write(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Vocalist profile submitted successfully", "profile": profile})
}

// GET /vocalists/profile/:vocalist_id
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
	case actor.Role.IsVocalist():
		targetID = actor.ID
	case actor.Role.CanModerate():
		id, err := strconv.ParseUint(c.Param("vocalist_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid vocalist id"})
			return
		}
		targetID = uint(id)
	default:
		c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to view vocalist profiles"})
		return
	}

	profile, err := registry.GetVocalist(c.Request.Context(), targetID)
	if err != nil {
		httperr.Write(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// GET /vocalists/is-registered
func IsRegistered(c *gin.Context) {
	registry := profiles.NewRegistry(database.DB)
	ok, err := registry.Exists(c.Request.Context(), c.GetUint("user_id"))
	if err != nil {
		httperr.Write(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"is_registered": ok})
}
