package public

import (
	"net/http"
	"strconv"

	"kalam-platform/database"
	"kalam-platform/internal/api/httperr"
	"kalam-platform/internal/domain/kalam"
	"kalam-platform/internal/domain/outreach"

	"github.com/gin-gonic/gin"
)

type PartnershipProposalRequest struct {
	FullName         string  `json:"full_name" binding:"required"`
	Email            string  `json:"email" binding:"required,email"`
	OrganizationName string  `json:"organization_name" binding:"required"`
	RoleTitle        string  `json:"role_title" binding:"required"`
	OrganizationType *string `json:"organization_type"`
	PartnershipType  *string `json:"partnership_type"`
	Website          *string `json:"website"`

	ProposalText     string  `json:"proposal_text" binding:"required"`
	ProposedTimeline *string `json:"proposed_timeline"`
	Resources        *string `json:"resources"`
	Goals            *string `json:"goals"`
	SacredAlignment  *bool   `json:"sacred_alignment"`
}

// POST /public
func CreatePartnershipProposal(c *gin.Context) {
	var input PartnershipProposalRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	alignment := true
	if input.SacredAlignment != nil {
		alignment = *input.SacredAlignment
	}

	proposal := outreach.PartnershipProposal{
		FullName:         input.FullName,
		Email:            input.Email,
		OrganizationName: input.OrganizationName,
		RoleTitle:        input.RoleTitle,
		OrganizationType: input.OrganizationType,
		PartnershipType:  input.PartnershipType,
		Website:          input.Website,
		ProposalText:     input.ProposalText,
		ProposedTimeline: input.ProposedTimeline,
		Resources:        input.Resources,
		Goals:            input.Goals,
		SacredAlignment:  alignment,
	}

	if err := database.DB.Create(&proposal).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create partnership proposal"})
		return
	}

	c.JSON(http.StatusOK, proposal)
}

// GET /public
func ListPostedKalams(c *gin.Context) {
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "4"))
	if limit < 1 {
		limit = 1
	}

	registry := kalam.NewRegistry(database.DB)
	works, err := registry.ListPosted(c.Request.Context(), skip, limit)
	if err != nil {
		httperr.Write(c, err)
		return
	}

	c.JSON(http.StatusOK, works)
}
