package kalam

import (
	"context"
	"errors"
	"time"

	"kalam-platform/internal/domain/errs"
	"kalam-platform/internal/domain/identity"

	"gorm.io/gorm"
)

// Registry owns the canonical Work record. Status writes belong to the
// StateMachine; the registry only mutates work fields, and only under the
// preconditions the workflow defines.
type Registry struct {
	db *gorm.DB
}

func NewRegistry(db *gorm.DB) *Registry {
	return &Registry{db: db}
}

type CreateWorkInput struct {
	Title         string
	Language      string
	Theme         string
	BodyText      string
	Description   string
	InfluenceTag  string
	PreferenceTag string

	WriterComments *string
}

type UpdateWorkInput struct {
	Title         *string
	Language      *string
	Theme         *string
	BodyText      *string
	Description   *string
	InfluenceTag  *string
	PreferenceTag *string
}

func (in CreateWorkInput) validate() error {
	required := []struct {
		field, value string
	}{
		{"title", in.Title},
		{"language", in.Language},
		{"theme", in.Theme},
		{"body_text", in.BodyText},
		{"description", in.Description},
		{"influence_tag", in.InfluenceTag},
		{"preference_tag", in.PreferenceTag},
	}
	for _, r := range required {
		if r.value == "" {
			return &errs.ValidationError{Field: r.field, Reason: "must not be empty"}
		}
	}
	return nil
}

// editLocked are the statuses during which the writer may no longer edit
// content: an approved submission locks the text it was approved on.
var editLocked = map[Status]bool{
	StatusFinalApproved:    true,
	StatusCompleteApproved: true,
	StatusPosted:           true,
}

// Create inserts a Work together with its Submission. The draft state is
// transient: the submission is auto-submitted in the same transaction, so
// the first state anyone observes is "submitted" with a pending writer
// approval.
func (r *Registry) Create(ctx context.Context, writerID uint, in CreateWorkInput) (*Work, *Submission, error) {
	if err := in.validate(); err != nil {
		return nil, nil, err
	}

	work := &Work{
		Title:         in.Title,
		Language:      in.Language,
		Theme:         in.Theme,
		BodyText:      in.BodyText,
		Description:   in.Description,
		InfluenceTag:  in.InfluenceTag,
		PreferenceTag: in.PreferenceTag,
		WriterID:      writerID,
	}
	sub := &Submission{
		Status:         StatusSubmitted,
		WriterApproval: approvalPtr(ApprovalPending),
		WriterComments: in.WriterComments,
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(work).Error; err != nil {
			return err
		}
		sub.WorkID = work.ID
		return tx.Create(sub).Error
	})
	if err != nil {
		return nil, nil, err
	}
	return work, sub, nil
}

func (r *Registry) Get(ctx context.Context, workID uint) (*Work, error) {
	return getWork(r.db.WithContext(ctx), workID)
}

func (r *Registry) GetSubmission(ctx context.Context, submissionID uint) (*Submission, error) {
	return getSubmission(r.db.WithContext(ctx), submissionID)
}

func (r *Registry) GetSubmissionByWork(ctx context.Context, workID uint) (*Submission, error) {
	return getSubmissionByWork(r.db.WithContext(ctx), workID)
}

func (r *Registry) GetByWriter(ctx context.Context, writerID uint) ([]Work, error) {
	var works []Work
	err := r.db.WithContext(ctx).
		Where("writer_id = ?", writerID).
		Order("created_at DESC").
		Find(&works).Error
	return works, err
}

func (r *Registry) GetByVocalist(ctx context.Context, vocalistID uint) ([]Work, error) {
	var works []Work
	err := r.db.WithContext(ctx).
		Where("vocalist_id = ?", vocalistID).
		Order("created_at DESC").
		Find(&works).Error
	return works, err
}

// ListPosted returns published works for the public feed, newest first.
func (r *Registry) ListPosted(ctx context.Context, offset, limit int) ([]Work, error) {
	var works []Work
	err := r.db.WithContext(ctx).
		Where("publish_link IS NOT NULL").
		Order("published_at DESC").
		Offset(offset).Limit(limit).
		Find(&works).Error
	return works, err
}

// Update applies only the provided fields. Writers may only touch their
// own works, and not while an approved submission locks the content.
func (r *Registry) Update(ctx context.Context, workID uint, in UpdateWorkInput, actor identity.Actor) (*Work, error) {
	db := r.db.WithContext(ctx)

	work, err := getWork(db, workID)
	if err != nil {
		return nil, err
	}
	if actor.Role.IsWriter() && work.WriterID != actor.ID {
		return nil, &errs.AuthorizationError{Reason: "not authorized to update this work"}
	}

	sub, err := getSubmissionByWork(db, workID)
	if err != nil {
		return nil, err
	}
	if actor.Role.IsWriter() && editLocked[sub.Status] {
		return nil, &errs.PreconditionError{
			Reason:  "work is locked by an approved submission",
			Current: string(sub.Status),
		}
	}

	updates := map[string]any{}
	set := func(col string, v *string) {
		if v != nil {
			updates[col] = *v
		}
	}
	set("title", in.Title)
	set("language", in.Language)
	set("theme", in.Theme)
	set("body_text", in.BodyText)
	set("description", in.Description)
	set("influence_tag", in.InfluenceTag)
	set("preference_tag", in.PreferenceTag)

	if len(updates) == 0 {
		return nil, &errs.ValidationError{Reason: "no fields provided to update"}
	}

	if err := db.Model(&Work{}).Where("id = ?", workID).Updates(updates).Error; err != nil {
		return nil, err
	}
	return getWork(db, workID)
}

// assignVocalist sets the vocalist linkage. Runs inside the caller's
// transaction; the final_approved precondition is checked by the caller
// under the same transaction.
func (r *Registry) assignVocalist(tx *gorm.DB, workID, vocalistID uint) error {
	res := tx.Model(&Work{}).Where("id = ?", workID).Update("vocalist_id", vocalistID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return &errs.NotFoundError{Entity: "work", ID: workID}
	}
	return nil
}

// clearVocalist drops the vocalist linkage on rejection.
func (r *Registry) clearVocalist(tx *gorm.DB, workID uint) error {
	res := tx.Model(&Work{}).Where("id = ?", workID).Update("vocalist_id", nil)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return &errs.NotFoundError{Entity: "work", ID: workID}
	}
	return nil
}

// setPublishLink records the external link and stamps published_at.
func (r *Registry) setPublishLink(tx *gorm.DB, workID uint, link string, now time.Time) error {
	res := tx.Model(&Work{}).Where("id = ?", workID).Updates(map[string]any{
		"publish_link": link,
		"published_at": now,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return &errs.NotFoundError{Entity: "work", ID: workID}
	}
	return nil
}

func getWork(db *gorm.DB, workID uint) (*Work, error) {
	var work Work
	err := db.First(&work, workID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &errs.NotFoundError{Entity: "work", ID: workID}
	}
	if err != nil {
		return nil, err
	}
	return &work, nil
}

func getSubmission(db *gorm.DB, submissionID uint) (*Submission, error) {
	var sub Submission
	err := db.First(&sub, submissionID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &errs.NotFoundError{Entity: "submission", ID: submissionID}
	}
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func getSubmissionByWork(db *gorm.DB, workID uint) (*Submission, error) {
	var sub Submission
	err := db.Where("work_id = ?", workID).First(&sub).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &errs.NotFoundError{Entity: "submission"}
	}
	if err != nil {
		return nil, err
	}
	return &sub, nil
}
