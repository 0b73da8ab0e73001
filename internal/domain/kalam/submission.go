package kalam

import "time"

// Status is the authoritative workflow position of a submission.
type Status string

const (
	StatusDraft            Status = "draft"
	StatusSubmitted        Status = "submitted"
	StatusAdminApproved    Status = "admin_approved"
	StatusAdminRejected    Status = "admin_rejected"
	StatusChangesRequested Status = "changes_requested"
	StatusFinalApproved    Status = "final_approved"
	StatusCompleteApproved Status = "complete_approved"
	StatusPosted           Status = "posted"
)

// Approval records the most recent response of the writer or vocalist,
// independent of the overall status. It tells an admin why a submission
// sits where it does.
type Approval string

const (
	ApprovalPending  Approval = "pending"
	ApprovalApproved Approval = "approved"
	ApprovalRejected Approval = "rejected"
)

func ParseApproval(s string) (Approval, bool) {
	switch Approval(s) {
	case ApprovalApproved, ApprovalRejected:
		return Approval(s), true
	}
	return "", false
}

// adminSettable is the closed set of statuses an admin may request
// directly. Anything else is rejected before touching the row.
var adminSettable = map[Status]bool{
	StatusAdminApproved:    true,
	StatusAdminRejected:    true,
	StatusChangesRequested: true,
	StatusFinalApproved:    true,
	StatusCompleteApproved: true,
}

// adminSetFrom is the set of current statuses an admin transition may
// start from. admin_rejected is a dead end: no resubmission edge exists.
var adminSetFrom = map[Status]bool{
	StatusSubmitted:        true,
	StatusChangesRequested: true,
}

type Submission struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	WorkID uint `gorm:"not null;uniqueIndex:idx_submissions_work" json:"work_id"`

	Status Status `gorm:"type:varchar(32);not null" json:"status"`

	WriterApproval   *Approval `gorm:"type:varchar(16)" json:"writer_approval,omitempty"`
	VocalistApproval *Approval `gorm:"type:varchar(16)" json:"vocalist_approval,omitempty"`

	AdminComments  *string `gorm:"type:text" json:"admin_comments,omitempty"`
	WriterComments *string `gorm:"type:text" json:"writer_comments,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func approvalPtr(a Approval) *Approval { return &a }
