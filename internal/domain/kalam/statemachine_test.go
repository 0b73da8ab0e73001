package kalam

import (
	"context"
	"errors"
	"testing"

	"kalam-platform/internal/domain/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func strPtr(s string) *string { return &s }

// setup creates a work owned by writerActor and returns it with its
// submission, a registry and a state machine all on the same store.
func setup(t *testing.T) (*gorm.DB, *Registry, *StateMachine, *Work, *Submission) {
	t.Helper()
	db := newTestDB(t)
	registry := NewRegistry(db)
	machine := NewStateMachine(db, registry)

	work, sub, err := registry.Create(context.Background(), writerActor.ID, validInput())
	require.NoError(t, err)
	return db, registry, machine, work, sub
}

func TestFullPublishFlow(t *testing.T) {
	db, registry, machine, work, sub := setup(t)
	ctx := context.Background()
	resolver := NewResolver(db, registry, fakeVocalists{vocalistActor.ID: true}, fakeBookings{})

	observed := []Status{sub.Status}

	sub, err := machine.SetStatus(ctx, sub.ID, StatusFinalApproved, strPtr("looks good"), adminActor)
	require.NoError(t, err)
	observed = append(observed, sub.Status)
	require.NotNil(t, sub.WriterApproval)
	assert.Equal(t, ApprovalApproved, *sub.WriterApproval)

	work, sub, err = resolver.Assign(ctx, work.ID, vocalistActor.ID, adminActor)
	require.NoError(t, err)
	observed = append(observed, sub.Status)
	require.NotNil(t, work.VocalistID)
	assert.Equal(t, vocalistActor.ID, *work.VocalistID)
	require.NotNil(t, sub.VocalistApproval)
	assert.Equal(t, ApprovalPending, *sub.VocalistApproval)

	work, sub, err = machine.VocalistRespond(ctx, sub.ID, ApprovalApproved, vocalistActor)
	require.NoError(t, err)
	observed = append(observed, sub.Status)
	assert.Equal(t, ApprovalApproved, *sub.VocalistApproval)

	work, sub, err = machine.PostPublishLink(ctx, work.ID, "https://youtu.be/abc123", adminActor)
	require.NoError(t, err)
	observed = append(observed, sub.Status)

	assert.Equal(t, []Status{
		StatusSubmitted,
		StatusFinalApproved,
		StatusFinalApproved,
		StatusCompleteApproved,
		StatusPosted,
	}, observed)

	require.NotNil(t, work.PublishLink)
	assert.Equal(t, "https://youtu.be/abc123", *work.PublishLink)
	require.NotNil(t, work.PublishedAt)
}

func TestSetStatusAuthorization(t *testing.T) {
	_, _, machine, _, sub := setup(t)

	var aerr *errs.AuthorizationError
	_, err := machine.SetStatus(context.Background(), sub.ID, StatusAdminApproved, nil, writerActor)
	require.ErrorAs(t, err, &aerr)

	// sub-admins moderate like admins do
	_, err = machine.SetStatus(context.Background(), sub.ID, StatusAdminApproved, nil, subAdminActor)
	require.NoError(t, err)
}

func TestSetStatusRejectsNonAdminStatuses(t *testing.T) {
	_, _, machine, _, sub := setup(t)
	ctx := context.Background()

	for _, bad := range []Status{StatusDraft, StatusSubmitted, StatusPosted, Status("bogus")} {
		_, err := machine.SetStatus(ctx, sub.ID, bad, nil, adminActor)
		var verr *errs.ValidationError
		require.ErrorAs(t, err, &verr, "status %q should be refused", bad)
	}
}

func TestSetStatusOnlyFromTriageStates(t *testing.T) {
	_, _, machine, _, sub := setup(t)
	ctx := context.Background()

	sub, err := machine.SetStatus(ctx, sub.ID, StatusFinalApproved, nil, adminActor)
	require.NoError(t, err)

	_, err = machine.SetStatus(ctx, sub.ID, StatusAdminApproved, nil, adminActor)
	var terr *errs.InvalidTransition
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, string(StatusFinalApproved), terr.Current)
}

func TestChangesRequestedReopensWriterApproval(t *testing.T) {
	_, _, machine, _, sub := setup(t)
	ctx := context.Background()

	sub, err := machine.SetStatus(ctx, sub.ID, StatusChangesRequested, strPtr("tighten the second verse"), adminActor)
	require.NoError(t, err)

	assert.Equal(t, StatusChangesRequested, sub.Status)
	require.NotNil(t, sub.WriterApproval)
	assert.Equal(t, ApprovalPending, *sub.WriterApproval)
	require.NotNil(t, sub.AdminComments)
	assert.Equal(t, "tighten the second verse", *sub.AdminComments)
}

func TestAdminRejectedIsTerminal(t *testing.T) {
	_, _, machine, _, sub := setup(t)
	ctx := context.Background()

	sub, err := machine.SetStatus(ctx, sub.ID, StatusAdminRejected, strPtr("off theme"), adminActor)
	require.NoError(t, err)
	assert.Equal(t, StatusAdminRejected, sub.Status)

	// no admin transition leads out of admin_rejected
	for _, next := range []Status{StatusAdminApproved, StatusChangesRequested, StatusFinalApproved} {
		_, err := machine.SetStatus(ctx, sub.ID, next, nil, adminActor)
		var terr *errs.InvalidTransition
		require.ErrorAs(t, err, &terr)
	}
}

func TestWriterApproveFinalizes(t *testing.T) {
	_, _, machine, _, sub := setup(t)
	ctx := context.Background()

	sub, err := machine.SetStatus(ctx, sub.ID, StatusChangesRequested, nil, adminActor)
	require.NoError(t, err)

	sub, err = machine.WriterRespond(ctx, sub.ID, ApprovalApproved, strPtr("done"), writerActor)
	require.NoError(t, err)

	assert.Equal(t, StatusFinalApproved, sub.Status)
	assert.Equal(t, ApprovalApproved, *sub.WriterApproval)
	require.NotNil(t, sub.WriterComments)
	assert.Equal(t, "done", *sub.WriterComments)
}

func TestWriterRejectResetsToSubmitted(t *testing.T) {
	_, _, machine, _, sub := setup(t)
	ctx := context.Background()

	sub, err := machine.SetStatus(ctx, sub.ID, StatusChangesRequested, nil, adminActor)
	require.NoError(t, err)

	sub, err = machine.WriterRespond(ctx, sub.ID, ApprovalRejected, strPtr("disagree with the edit"), writerActor)
	require.NoError(t, err)

	assert.Equal(t, StatusSubmitted, sub.Status)
	assert.Equal(t, ApprovalRejected, *sub.WriterApproval)
}

func TestWriterRespondRequiresPendingApproval(t *testing.T) {
	_, _, machine, _, sub := setup(t)
	ctx := context.Background()

	// final_approved marks the writer approved, so there is nothing to
	// respond to afterwards
	sub, err := machine.SetStatus(ctx, sub.ID, StatusFinalApproved, nil, adminActor)
	require.NoError(t, err)

	_, err = machine.WriterRespond(ctx, sub.ID, ApprovalApproved, nil, writerActor)
	var terr *errs.InvalidTransition
	require.ErrorAs(t, err, &terr)
}

func TestWriterRespondOwnership(t *testing.T) {
	_, _, machine, _, sub := setup(t)
	ctx := context.Background()

	var aerr *errs.AuthorizationError
	_, err := machine.WriterRespond(ctx, sub.ID, ApprovalApproved, nil, otherWriter)
	require.ErrorAs(t, err, &aerr)

	_, err = machine.WriterRespond(ctx, sub.ID, ApprovalApproved, nil, vocalistActor)
	require.ErrorAs(t, err, &aerr)
}

func TestVocalistRejectReopensWorkflow(t *testing.T) {
	db, registry, machine, work, sub := setup(t)
	ctx := context.Background()
	resolver := NewResolver(db, registry, fakeVocalists{vocalistActor.ID: true}, fakeBookings{})

	_, err := machine.SetStatus(ctx, sub.ID, StatusFinalApproved, nil, adminActor)
	require.NoError(t, err)
	work, sub, err = resolver.Assign(ctx, work.ID, vocalistActor.ID, adminActor)
	require.NoError(t, err)

	work, sub, err = machine.VocalistRespond(ctx, sub.ID, ApprovalRejected, vocalistActor)
	require.NoError(t, err)

	assert.Equal(t, StatusSubmitted, sub.Status)
	assert.Equal(t, ApprovalRejected, *sub.VocalistApproval)
	assert.Equal(t, ApprovalPending, *sub.WriterApproval)
	assert.Nil(t, work.VocalistID)

	// the work can be re-triaged and assigned to someone else
	sub, err = machine.SetStatus(ctx, sub.ID, StatusFinalApproved, nil, adminActor)
	require.NoError(t, err)
	work, sub, err = resolver.Assign(ctx, work.ID, vocalistActor.ID, adminActor)
	require.NoError(t, err)
	assert.Equal(t, ApprovalPending, *sub.VocalistApproval)
}

func TestVocalistRejectIsAtomic(t *testing.T) {
	db, registry, machine, work, sub := setup(t)
	ctx := context.Background()
	resolver := NewResolver(db, registry, fakeVocalists{vocalistActor.ID: true}, fakeBookings{})

	_, err := machine.SetStatus(ctx, sub.ID, StatusFinalApproved, nil, adminActor)
	require.NoError(t, err)
	work, sub, err = resolver.Assign(ctx, work.ID, vocalistActor.ID, adminActor)
	require.NoError(t, err)

	// fail the works-table write inside the rejection transaction
	injected := errors.New("injected write failure")
	failWorks := true
	err = db.Callback().Update().Before("gorm:update").Register("fail_works_update", func(tx *gorm.DB) {
		if failWorks && tx.Statement.Table == "works" {
			tx.AddError(injected)
		}
	})
	require.NoError(t, err)

	_, _, err = machine.VocalistRespond(ctx, sub.ID, ApprovalRejected, vocalistActor)
	require.ErrorIs(t, err, injected)
	failWorks = false

	// the submission write rolled back with it
	sub, err = registry.GetSubmission(ctx, sub.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusFinalApproved, sub.Status)
	assert.Equal(t, ApprovalPending, *sub.VocalistApproval)

	work, err = registry.Get(ctx, work.ID)
	require.NoError(t, err)
	require.NotNil(t, work.VocalistID)
	assert.Equal(t, vocalistActor.ID, *work.VocalistID)
}

func TestVocalistRespondRequiresAssignment(t *testing.T) {
	_, _, machine, _, sub := setup(t)
	ctx := context.Background()

	_, err := machine.SetStatus(ctx, sub.ID, StatusFinalApproved, nil, adminActor)
	require.NoError(t, err)

	// not assigned at all
	var aerr *errs.AuthorizationError
	_, _, err = machine.VocalistRespond(ctx, sub.ID, ApprovalApproved, vocalistActor)
	require.ErrorAs(t, err, &aerr)
}

func TestVocalistRespondRequiresFinalApproved(t *testing.T) {
	db, _, machine, work, sub := setup(t)
	ctx := context.Background()

	// assigned out of band while still submitted
	require.NoError(t, db.Model(&Work{}).Where("id = ?", work.ID).Update("vocalist_id", vocalistActor.ID).Error)

	_, _, err := machine.VocalistRespond(ctx, sub.ID, ApprovalApproved, vocalistActor)
	var terr *errs.InvalidTransition
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, string(StatusSubmitted), terr.Current)
}

func TestPostPublishLinkPreconditions(t *testing.T) {
	_, _, machine, work, _ := setup(t)
	ctx := context.Background()

	_, _, err := machine.PostPublishLink(ctx, work.ID, "https://youtu.be/abc123", adminActor)
	var perr *errs.PreconditionError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, string(StatusSubmitted), perr.Current)

	var verr *errs.ValidationError
	_, _, err = machine.PostPublishLink(ctx, work.ID, "", adminActor)
	require.ErrorAs(t, err, &verr)

	var aerr *errs.AuthorizationError
	_, _, err = machine.PostPublishLink(ctx, work.ID, "https://youtu.be/abc123", writerActor)
	require.ErrorAs(t, err, &aerr)
}

func TestCASReportsFreshStatus(t *testing.T) {
	db, _, _, _, sub := setup(t)

	// stale guard: the submission is submitted, not final_approved
	err := casStatus(db, sub.ID, StatusFinalApproved, StatusCompleteApproved, nil)
	var terr *errs.InvalidTransition
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, string(StatusSubmitted), terr.Current)
	assert.Equal(t, string(StatusCompleteApproved), terr.Requested)
}

func TestInvalidTransitionMatchesPrecondition(t *testing.T) {
	db, _, _, _, sub := setup(t)

	err := casStatus(db, sub.ID, StatusPosted, StatusPosted, nil)
	var perr *errs.PreconditionError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, string(StatusSubmitted), perr.Current)
}
