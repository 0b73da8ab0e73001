package outreach

import "time"

// PartnershipProposal is an unauthenticated intake record from the public
// site.
type PartnershipProposal struct {
	ID uint `gorm:"primaryKey" json:"id"`

	FullName         string  `gorm:"not null" json:"full_name"`
	Email            string  `gorm:"not null" json:"email"`
	OrganizationName string  `gorm:"not null" json:"organization_name"`
	RoleTitle        string  `gorm:"not null" json:"role_title"`
	OrganizationType *string `json:"organization_type,omitempty"`
	PartnershipType  *string `json:"partnership_type,omitempty"`
	Website          *string `json:"website,omitempty"`

	ProposalText     string  `gorm:"type:text;not null" json:"proposal_text"`
	ProposedTimeline *string `json:"proposed_timeline,omitempty"`
	Resources        *string `gorm:"type:text" json:"resources,omitempty"`
	Goals            *string `gorm:"type:text" json:"goals,omitempty"`
	SacredAlignment  bool    `gorm:"not null;default:true" json:"sacred_alignment"`

	CreatedAt time.Time `json:"created_at"`
}
