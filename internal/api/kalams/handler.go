package kalams

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

type services struct {
	directory *identity.Directory
	registry  *kalam.Registry
	machine   *kalam.StateMachine
	resolver  *kalam.Resolver
}

func newServices() services {
	db := database.DB
	registry := kalam.NewRegistry(db)
	return services{
		directory: identity.NewDirectory(db),
		registry:  registry,
		machine:   kalam.NewStateMachine(db, registry),
		resolver:  kalam.NewResolver(db, registry, profiles.NewRegistry(db), scheduling.NewService(db)),
	}
}

func currentActor(c *gin.Context, s services) (identity.Actor, bool) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return identity.Actor{}, false
	}
	actor, err := s.directory.Resolve(c.Request.Context(), userID)
	if err != nil {
		httperr.Write(c, err)
		return identity.Actor{}, false
	}
	return actor, true
}

func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return uint(id), true
}

// POST /kalams
func CreateKalam(c *gin.Context) {
	s := newServices()
	actor, ok := currentActor(c, s)
	if !ok {
		return
	}
	if !actor.Role.IsWriter() {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only writers can create kalams"})
		return
	}

	var input CreateKalamRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	work, sub, err := s.registry.Create(c.Request.Context(), actor.ID, kalam.CreateWorkInput{
		Title:          input.Title,
		Language:       input.Language,
		Theme:          input.Theme,
		BodyText:       input.BodyText,
		Description:    input.Description,
		InfluenceTag:   input.InfluenceTag,
		PreferenceTag:  input.PreferenceTag,
		WriterComments: input.WriterComments,
	})
	if err != nil {
		httperr.Write(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Kalam created and submitted successfully",
		"kalam":      work,
		"submission": sub,
	})
}

// GET /kalams/:id
func GetKalam(c *gin.Context) {
	s := newServices()
	if _, ok := currentActor(c, s); !ok {
		return
	}
	workID, ok := pathID(c, "id")
	if !ok {
		return
	}

	work, err := s.registry.Get(c.Request.Context(), workID)
	if err != nil {
		httperr.Write(c, err)
		return
	}
	sub, err := s.registry.GetSubmissionByWork(c.Request.Context(), workID)
	if err != nil {
		httperr.Write(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"kalam": work, "submission": sub})
}

// PUT /kalams/:id
func UpdateKalam(c *gin.Context) {
	s := newServices()
	actor, ok := currentActor(c, s)
	if !ok {
		return
	}
	workID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var input UpdateKalamRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	work, err := s.registry.Update(c.Request.Context(), workID, kalam.UpdateWorkInput{
		Title:         input.Title,
		Language:      input.Language,
		Theme:         input.Theme,
		BodyText:      input.BodyText,
		Description:   input.Description,
		InfluenceTag:  input.InfluenceTag,
		PreferenceTag: input.PreferenceTag,
	}, actor)
	if err != nil {
		httperr.Write(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Kalam updated successfully", "kalam": work})
}

// POST /kalams/:id/assign-vocalist
func AssignVocalist(c *gin.Context) {
	s := newServices()
	actor, ok := currentActor(c, s)
	if !ok {
		return
	}
	workID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var input AssignVocalistRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	work, sub, err := s.resolver.Assign(c.Request.Context(), workID, input.VocalistID, actor)
	if err != nil {
		httperr.Write(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Vocalist assigned successfully",
		"kalam":      work,
		"submission": sub,
	})
}

// POST /kalams/:id/post-publish-link
func PostPublishLink(c *gin.Context) {
	s := newServices()
	actor, ok := currentActor(c, s)
	if !ok {
		return
	}
	workID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var input PublishLinkRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	work, sub, err := s.machine.PostPublishLink(c.Request.Context(), workID, input.Link, actor)
	if err != nil {
		httperr.Write(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Publish link posted successfully",
		"kalam":      work,
		"submission": sub,
	})
}

// submissionForWork loads a submission and checks it belongs to the work
// in the path. The two-id route shape is part of the public API.
func submissionForWork(c *gin.Context, s services) (*kalam.Submission, bool) {
	workID, ok := pathID(c, "id")
	if !ok {
		return nil, false
	}
	subID, ok := pathID(c, "sub_id")
	if !ok {
		return nil, false
	}

	sub, err := s.registry.GetSubmission(c.Request.Context(), subID)
	if err != nil {
		httperr.Write(c, err)
		return nil, false
	}
	if sub.WorkID != workID {
		c.JSON(http.StatusNotFound, gin.H{"error": "Submission not found"})
		return nil, false
	}
	return sub, true
}

// GET /kalams/:id/submissions/:sub_id
func GetSubmission(c *gin.Context) {
	s := newServices()
	if _, ok := currentActor(c, s); !ok {
		return
	}
	sub, ok := submissionForWork(c, s)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, sub)
}

// POST /kalams/:id/submissions/:sub_id/update-status
func UpdateSubmissionStatus(c *gin.Context) {
	s := newServices()
	actor, ok := currentActor(c, s)
	if !ok {
		return
	}
	sub, ok := submissionForWork(c, s)
	if !ok {
		return
	}

	var input UpdateStatusRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := s.machine.SetStatus(c.Request.Context(), sub.ID, kalam.Status(input.NewStatus), input.Comments, actor)
	if err != nil {
		httperr.Write(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Submission status updated successfully", "submission": updated})
}

// POST /kalams/:id/submissions/:sub_id/writer-response
func WriterResponse(c *gin.Context) {
	s := newServices()
	actor, ok := currentActor(c, s)
	if !ok {
		return
	}
	sub, ok := submissionForWork(c, s)
	if !ok {
		return
	}

	var input WriterResponseRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	approval, ok := kalam.ParseApproval(input.ApprovalStatus)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid approval status"})
		return
	}

	updated, err := s.machine.WriterRespond(c.Request.Context(), sub.ID, approval, input.WriterComments, actor)
	if err != nil {
		httperr.Write(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Writer response processed successfully", "submission": updated})
}

// POST /kalams/:id/submissions/:sub_id/vocalist-response
func VocalistResponse(c *gin.Context) {
	s := newServices()
	actor, ok := currentActor(c, s)
	if !ok {
		return
	}
	sub, ok := submissionForWork(c, s)
	if !ok {
		return
	}

	var input VocalistResponseRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	approval, ok := kalam.ParseApproval(input.ApprovalStatus)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid approval status"})
		return
	}

	work, updated, err := s.machine.VocalistRespond(c.Request.Context(), sub.ID, approval, actor)
	if err != nil {
		httperr.Write(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Vocalist response processed successfully",
		"kalam":      work,
		"submission": updated,
	})
}

// GET /writers/my-kalams
func GetMyKalams(c *gin.Context) {
	s := newServices()
	actor, ok := currentActor(c, s)
	if !ok {
		return
	}
	if !actor.Role.IsWriter() {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only writers can view their own kalams"})
		return
	}

	works, err := s.registry.GetByWriter(c.Request.Context(), actor.ID)
	if err != nil {
		httperr.Write(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Kalams retrieved successfully", "kalams": works})
}

// GET /vocalists/my-kalams
func GetAssignedKalams(c *gin.Context) {
	s := newServices()
	actor, ok := currentActor(c, s)
	if !ok {
		return
	}
	if !actor.Role.IsVocalist() {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only vocalists can view their assigned kalams"})
		return
	}

	works, err := s.registry.GetByVocalist(c.Request.Context(), actor.ID)
	if err != nil {
		httperr.Write(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Kalams retrieved successfully", "kalams": works})
}
