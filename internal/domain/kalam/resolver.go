package kalam

import (
	"context"

	"kalam-platform/internal/domain/errs"
	"kalam-platform/internal/domain/identity"

	"gorm.io/gorm"
)

// VocalistLookup answers whether a user has a registered vocalist
// profile. Implemented by the profiles registry.
type VocalistLookup interface {
	Exists(ctx context.Context, userID uint) (bool, error)
}

// BookingLookup answers whether a vocalist already has an open
// studio-booking request against a work. Implemented by the scheduling
// collaborator.
type BookingLookup interface {
	HasOpenRequest(ctx context.Context, vocalistID, workID uint) (bool, error)
}

// Resolver matches an approved work to a vocalist. The work mutation and
// the submission side effect commit in one transaction.
type Resolver struct {
	db        *gorm.DB
	registry  *Registry
	vocalists VocalistLookup
	bookings  BookingLookup
}

func NewResolver(db *gorm.DB, registry *Registry, vocalists VocalistLookup, bookings BookingLookup) *Resolver {
	return &Resolver{db: db, registry: registry, vocalists: vocalists, bookings: bookings}
}

// Assign links a vocalist to a final_approved work and opens the
// vocalist's pending approval. The submission stays in final_approved.
func (r *Resolver) Assign(ctx context.Context, workID, vocalistID uint, actor identity.Actor) (*Work, *Submission, error) {
	if !actor.Role.CanModerate() {
		return nil, nil, &errs.AuthorizationError{Reason: "only admins can assign vocalists"}
	}

	db := r.db.WithContext(ctx)

	ok, err := r.vocalists.Exists(ctx, vocalistID)
	if err != nil {
		return nil, nil, err
	}
	if !ok {
		return nil, nil, &errs.NotFoundError{Entity: "vocalist", ID: vocalistID}
	}

	sub, err := getSubmissionByWork(db, workID)
	if err != nil {
		return nil, nil, err
	}
	if sub.Status != StatusFinalApproved {
		return nil, nil, &errs.PreconditionError{
			Reason:  "work must be final_approved to assign a vocalist",
			Current: string(sub.Status),
		}
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := r.registry.assignVocalist(tx, workID, vocalistID); err != nil {
			return err
		}
		// Status is unchanged but still CAS-guarded: if another admin
		// moved the submission meanwhile, the whole assignment rolls back.
		return casStatus(tx, sub.ID, StatusFinalApproved, StatusFinalApproved, map[string]any{
			"vocalist_approval": ApprovalPending,
		})
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

// CheckConflict reports whether the vocalist already has an open booking
// request against this work.
func (r *Resolver) CheckConflict(ctx context.Context, vocalistID, workID uint) (bool, error) {
	return r.bookings.HasOpenRequest(ctx, vocalistID, workID)
}
