package kalam

import (
	"context"
	"time"

	"kalam-platform/internal/domain/errs"
	"kalam-platform/internal/domain/identity"

	"gorm.io/gorm"
)

// StateMachine owns every status write. All transitions are
// compare-and-swap on the status column: a concurrent transition that
// moved the submission first makes the second one fail with
// InvalidTransition instead of silently overwriting it.
type StateMachine struct {
	db       *gorm.DB
	registry *Registry
}

func NewStateMachine(db *gorm.DB, registry *Registry) *StateMachine {
	return &StateMachine{db: db, registry: registry}
}

// casStatus moves a submission from one status to another, applying the
// extra column updates in the same statement. Zero rows affected means
// the guard no longer holds; the fresh status is reported back.
func casStatus(tx *gorm.DB, subID uint, from, to Status, updates map[string]any) error {
	if updates == nil {
		updates = map[string]any{}
	}
	updates["status"] = to

	res := tx.Model(&Submission{}).
		Where("id = ? AND status = ?", subID, from).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		fresh, err := getSubmission(tx, subID)
		if err != nil {
			return err
		}
		return &errs.InvalidTransition{Current: string(fresh.Status), Requested: string(to)}
	}
	return nil
}

// SetStatus applies an admin-requested status. Only submitted and
// changes_requested submissions can be re-triaged; the requested status
// must come from the closed admin set. Writer approval side effects
// follow the transition table: changes_requested re-opens the writer's
// pending response, final_approved records the writer as approved.
func (m *StateMachine) SetStatus(ctx context.Context, submissionID uint, requested Status, comments *string, actor identity.Actor) (*Submission, error) {
	if !actor.Role.CanModerate() {
		return nil, &errs.AuthorizationError{Reason: "only admins can update submission status"}
	}
	if !adminSettable[requested] {
		return nil, &errs.ValidationError{Field: "new_status", Reason: "invalid status"}
	}

	db := m.db.WithContext(ctx)
	sub, err := getSubmission(db, submissionID)
	if err != nil {
		return nil, err
	}
	if !adminSetFrom[sub.Status] {
		return nil, &errs.InvalidTransition{Current: string(sub.Status), Requested: string(requested)}
	}

	updates := map[string]any{"admin_comments": comments}
	switch requested {
	case StatusChangesRequested:
		updates["writer_approval"] = ApprovalPending
	case StatusFinalApproved:
		updates["writer_approval"] = ApprovalApproved
	}

	if err := casStatus(db, submissionID, sub.Status, requested, updates); err != nil {
		return nil, err
	}
	return getSubmission(db, submissionID)
}

// WriterRespond records the owning writer's answer to a pending request.
// Approval finalizes the submission; rejection sends it back to the
// admin's queue as submitted. Legal from any status as long as the
// writer's approval is pending.
func (m *StateMachine) WriterRespond(ctx context.Context, submissionID uint, approval Approval, comments *string, actor identity.Actor) (*Submission, error) {
	if !actor.Role.IsWriter() {
		return nil, &errs.AuthorizationError{Reason: "only writers can respond to submissions"}
	}

	db := m.db.WithContext(ctx)
	sub, err := getSubmission(db, submissionID)
	if err != nil {
		return nil, err
	}
	work, err := getWork(db, sub.WorkID)
	if err != nil {
		return nil, err
	}
	if work.WriterID != actor.ID {
		return nil, &errs.AuthorizationError{Reason: "not authorized to respond to this submission"}
	}

	target := StatusFinalApproved
	if approval == ApprovalRejected {
		target = StatusSubmitted
	}

	if sub.WriterApproval == nil || *sub.WriterApproval != ApprovalPending {
		return nil, &errs.InvalidTransition{Current: string(sub.Status), Requested: string(target)}
	}

	// The pending guard rides in the WHERE clause alongside the status
	// guard so a concurrent response cannot be applied twice.
	res := db.Model(&Submission{}).
		Where("id = ? AND status = ? AND writer_approval = ?", submissionID, sub.Status, ApprovalPending).
		Updates(map[string]any{
			"status":          target,
			"writer_approval": approval,
			"writer_comments": comments,
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		fresh, err := getSubmission(db, submissionID)
		if err != nil {
			return nil, err
		}
		return nil, &errs.InvalidTransition{Current: string(fresh.Status), Requested: string(target)}
	}
	return getSubmission(db, submissionID)
}

// VocalistRespond records the assigned vocalist's answer. Acceptance
// moves the submission to complete_approved. Rejection reverts it to
// submitted, re-opens the writer's approval, and clears the vocalist
// linkage on the work; both writes commit together or not at all.
func (m *StateMachine) VocalistRespond(ctx context.Context, submissionID uint, approval Approval, actor identity.Actor) (*Work, *Submission, error) {
	if !actor.Role.IsVocalist() {
		return nil, nil, &errs.AuthorizationError{Reason: "only vocalists can respond to submissions"}
	}

	db := m.db.WithContext(ctx)
	sub, err := getSubmission(db, submissionID)
	if err != nil {
		return nil, nil, err
	}
	work, err := getWork(db, sub.WorkID)
	if err != nil {
		return nil, nil, err
	}
	if work.VocalistID == nil || *work.VocalistID != actor.ID {
		return nil, nil, &errs.AuthorizationError{Reason: "not authorized to respond to this submission"}
	}
	if sub.Status != StatusFinalApproved {
		return nil, nil, &errs.InvalidTransition{Current: string(sub.Status), Requested: string(StatusCompleteApproved)}
	}

	if approval == ApprovalApproved {
		err = casStatus(db, submissionID, StatusFinalApproved, StatusCompleteApproved, map[string]any{
			"vocalist_approval": ApprovalApproved,
		})
		if err != nil {
			return nil, nil, err
		}
	} else {
		err = db.Transaction(func(tx *gorm.DB) error {
			if err := casStatus(tx, submissionID, StatusFinalApproved, StatusSubmitted, map[string]any{
				"vocalist_approval": ApprovalRejected,
				"writer_approval":   ApprovalPending,
			}); err != nil {
				return err
			}
			return m.registry.clearVocalist(tx, work.ID)
		})
		if err != nil {
			return nil, nil, err
		}
	}

	work, err = getWork(db, sub.WorkID)
	if err != nil {
		return nil, nil, err
	}
	sub, err = getSubmission(db, submissionID)
	if err != nil {
		return nil, nil, err
	}
	return work, sub, nil
}

// PostPublishLink records the external publish link and closes the
// workflow. Only legal once the vocalist has accepted.
func (m *StateMachine) PostPublishLink(ctx context.Context, workID uint, link string, actor identity.Actor) (*Work, *Submission, error) {
	if !actor.Role.CanModerate() {
		return nil, nil, &errs.AuthorizationError{Reason: "only admins can post publish links"}
	}
	if link == "" {
		return nil, nil, &errs.ValidationError{Field: "link", Reason: "must not be empty"}
	}

	db := m.db.WithContext(ctx)
	sub, err := getSubmissionByWork(db, workID)
	if err != nil {
		return nil, nil, err
	}
	if sub.Status != StatusCompleteApproved {
		return nil, nil, &errs.PreconditionError{
			Reason:  "work must be complete_approved to post a publish link",
			Current: string(sub.Status),
		}
	}

	now := time.Now().UTC()
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := casStatus(tx, sub.ID, StatusCompleteApproved, StatusPosted, nil); err != nil {
			return err
		}
		return m.registry.setPublishLink(tx, workID, link, now)
	})
	if err != nil {
		return nil, nil, err
	}

	work, err := getWork(db, workID)
	if err != nil {
		return nil, nil, err
	}
	sub, err = getSubmission(db, sub.ID)
	if err != nil {
		return nil, nil, err
	}
	return work, sub, nil
}
