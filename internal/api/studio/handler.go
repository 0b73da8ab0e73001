package studio

import (
	"net/http"
	"strconv"

	"kalam-platform/database"
	"kalam-platform/internal/api/httperr"
	"kalam-platform/internal/domain/identity"
	"kalam-platform/internal/domain/kalam"
	"kalam-platform/internal/domain/profiles"
	"kalam-platform/internal/domain/scheduling"

	"github.com/gin-gonic/gin"
)

func resolveActor(c *gin.Context) (identity.Actor, bool) {
	directory := identity.NewDirectory(database.DB)
	actor, err := directory.Resolve(c.Request.Context(), c.GetUint("user_id"))
	if err != nil {
		httperr.Write(c, err)
		return identity.Actor{}, false
	}
	return actor, true
}

// POST /requests/studio-visit-request
func CreateStudioVisit(c *gin.Context) {
	actor, ok := resolveActor(c)
	if !ok {
		return
	}
	if !actor.Role.IsVocalist() {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only vocalists can create studio visit requests"})
		return
	}

	var input StudioVisitRequestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.VocalistID != actor.ID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Vocalist ID must match authenticated user"})
		return
	}

	req := &scheduling.StudioVisitRequest{
		VocalistID:        input.VocalistID,
		WorkID:            input.KalamID,
		Name:              input.Name,
		Email:             input.Email,
		Organization:      input.Organization,
		ContactNumber:     input.ContactNumber,
		PreferredDate:     input.PreferredDate,
		PreferredTime:     input.PreferredTime,
		Purpose:           input.Purpose,
		NumberOfVisitors:  input.NumberOfVisitors,
		AdditionalDetails: input.AdditionalDetails,
		SpecialRequests:   input.SpecialRequests,
	}
	if err := scheduling.NewService(database.DB).CreateStudioVisit(c.Request.Context(), req); err != nil {
		httperr.Write(c, err)
		return
	}

	c.JSON(http.StatusOK, req)
}

// GET /requests/studio-visit-requests
func ListStudioVisits(c *gin.Context) {
	out, err := scheduling.NewService(database.DB).ListStudioVisits(c.Request.Context())
	if err != nil {
		httperr.Write(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// GET /requests/studio-visit-requests/vocalist
func ListStudioVisitsByVocalist(c *gin.Context) {
	actor, ok := resolveActor(c)
	if !ok {
		return
	}
	if !actor.Role.IsVocalist() {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only vocalists can view their studio visit requests"})
		return
	}

	out, err := scheduling.NewService(database.DB).ListStudioVisitsByVocalist(c.Request.Context(), actor.ID)
	if err != nil {
		httperr.Write(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// POST /requests/remote-recording-request
func CreateRemoteRecording(c *gin.Context) {
	actor, ok := resolveActor(c)
	if !ok {
		return
	}
	if !actor.Role.IsVocalist() {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only vocalists can create remote recording requests"})
		return
	}

	var input RemoteRecordingRequestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.VocalistID != actor.ID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Vocalist ID must match authenticated user"})
		return
	}

	req := &scheduling.RemoteRecordingRequest{
		VocalistID:          input.VocalistID,
		WorkID:              input.KalamID,
		Name:                input.Name,
		Email:               input.Email,
		City:                input.City,
		Country:             input.Country,
		TimeZone:            input.TimeZone,
		Role:                input.Role,
		ProjectType:         input.ProjectType,
		RecordingEquipment:  input.RecordingEquipment,
		InternetSpeed:       input.InternetSpeed,
		PreferredSoftware:   input.PreferredSoftware,
		Availability:        input.Availability,
		RecordingExperience: input.RecordingExperience,
		TechnicalSetup:      input.TechnicalSetup,
		AdditionalDetails:   input.AdditionalDetails,
	}
	if err := scheduling.NewService(database.DB).CreateRemoteRecording(c.Request.Context(), req); err != nil {
		httperr.Write(c, err)
		return
	}

	c.JSON(http.StatusOK, req)
}

// GET /requests/remote-recording-requests
func ListRemoteRecordings(c *gin.Context) {
	out, err := scheduling.NewService(database.DB).ListRemoteRecordings(c.Request.Context())
	if err != nil {
		httperr.Write(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// GET /requests/remote-recording-requests/vocalist
func ListRemoteRecordingsByVocalist(c *gin.Context) {
	actor, ok := resolveActor(c)
	if !ok {
		return
	}
	if !actor.Role.IsVocalist() {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only vocalists can view their remote recording requests"})
		return
	}

	out, err := scheduling.NewService(database.DB).ListRemoteRecordingsByVocalist(c.Request.Context(), actor.ID)
	if err != nil {
		httperr.Write(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// GET /requests/check-request-exists/:vocalist_id/:kalam_id
func CheckRequestExists(c *gin.Context) {
	actor, ok := resolveActor(c)
	if !ok {
		return
	}
	if !actor.Role.IsVocalist() && !actor.Role.CanModerate() {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only vocalists or admins can check request existence"})
		return
	}

	vocalistID, err := strconv.ParseUint(c.Param("vocalist_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid vocalist id"})
		return
	}
	workID, err := strconv.ParseUint(c.Param("kalam_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid kalam id"})
		return
	}

	if actor.Role.IsVocalist() && uint(vocalistID) != actor.ID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Vocalists can only check their own requests"})
		return
	}

	db := database.DB
	registry := kalam.NewRegistry(db)
	resolver := kalam.NewResolver(db, registry, profiles.NewRegistry(db), scheduling.NewService(db))

	booked, err := resolver.CheckConflict(c.Request.Context(), uint(vocalistID), uint(workID))
	if err != nil {
		httperr.Write(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"is_booked": booked})
}
