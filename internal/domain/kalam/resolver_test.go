package kalam

import (
	"context"
	"testing"

	"kalam-platform/internal/domain/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeVocalists reports registered vocalist IDs.
type fakeVocalists map[uint]bool

func (f fakeVocalists) Exists(_ context.Context, userID uint) (bool, error) {
	return f[userID], nil
}

// fakeBookings reports (vocalist, work) pairs with an open request.
type fakeBookings map[[2]uint]bool

func (f fakeBookings) HasOpenRequest(_ context.Context, vocalistID, workID uint) (bool, error) {
	return f[[2]uint{vocalistID, workID}], nil
}

func TestAssignSetsVocalistAndOpensApproval(t *testing.T) {
	db, registry, machine, work, sub := setup(t)
	ctx := context.Background()
	resolver := NewResolver(db, registry, fakeVocalists{vocalistActor.ID: true}, fakeBookings{})

	_, err := machine.SetStatus(ctx, sub.ID, StatusFinalApproved, nil, adminActor)
	require.NoError(t, err)

	work, sub, err = resolver.Assign(ctx, work.ID, vocalistActor.ID, adminActor)
	require.NoError(t, err)

	require.NotNil(t, work.VocalistID)
	assert.Equal(t, vocalistActor.ID, *work.VocalistID)
	assert.Equal(t, StatusFinalApproved, sub.Status)
	require.NotNil(t, sub.VocalistApproval)
	assert.Equal(t, ApprovalPending, *sub.VocalistApproval)
}

func TestAssignRequiresFinalApproved(t *testing.T) {
	db, registry, _, work, _ := setup(t)
	ctx := context.Background()
	resolver := NewResolver(db, registry, fakeVocalists{vocalistActor.ID: true}, fakeBookings{})

	_, _, err := resolver.Assign(ctx, work.ID, vocalistActor.ID, adminActor)
	var perr *errs.PreconditionError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, string(StatusSubmitted), perr.Current)

	// the work was not touched
	fresh, err := registry.Get(ctx, work.ID)
	require.NoError(t, err)
	assert.Nil(t, fresh.VocalistID)
}

func TestAssignUnknownVocalist(t *testing.T) {
	db, registry, machine, work, sub := setup(t)
	ctx := context.Background()
	resolver := NewResolver(db, registry, fakeVocalists{}, fakeBookings{})

	_, err := machine.SetStatus(ctx, sub.ID, StatusFinalApproved, nil, adminActor)
	require.NoError(t, err)

	_, _, err = resolver.Assign(ctx, work.ID, 404, adminActor)
	var nerr *errs.NotFoundError
	require.ErrorAs(t, err, &nerr)
	assert.Equal(t, "vocalist", nerr.Entity)
}

func TestAssignRequiresModerator(t *testing.T) {
	db, registry, _, work, _ := setup(t)
	resolver := NewResolver(db, registry, fakeVocalists{vocalistActor.ID: true}, fakeBookings{})

	var aerr *errs.AuthorizationError
	_, _, err := resolver.Assign(context.Background(), work.ID, vocalistActor.ID, writerActor)
	require.ErrorAs(t, err, &aerr)
	_, _, err = resolver.Assign(context.Background(), work.ID, vocalistActor.ID, vocalistActor)
	require.ErrorAs(t, err, &aerr)
}

func TestReassignAfterRejection(t *testing.T) {
	db, registry, machine, work, sub := setup(t)
	ctx := context.Background()
	second := uint(8)
	resolver := NewResolver(db, registry, fakeVocalists{vocalistActor.ID: true, second: true}, fakeBookings{})

	_, err := machine.SetStatus(ctx, sub.ID, StatusFinalApproved, nil, adminActor)
	require.NoError(t, err)
	_, _, err = resolver.Assign(ctx, work.ID, vocalistActor.ID, adminActor)
	require.NoError(t, err)
	_, _, err = machine.VocalistRespond(ctx, sub.ID, ApprovalRejected, vocalistActor)
	require.NoError(t, err)

	// back through triage, then to the second vocalist
	_, err = machine.SetStatus(ctx, sub.ID, StatusFinalApproved, nil, adminActor)
	require.NoError(t, err)
	work2, sub2, err := resolver.Assign(ctx, work.ID, second, adminActor)
	require.NoError(t, err)

	require.NotNil(t, work2.VocalistID)
	assert.Equal(t, second, *work2.VocalistID)
	assert.Equal(t, ApprovalPending, *sub2.VocalistApproval)
}

func TestCheckConflict(t *testing.T) {
	db, registry, _, work, _ := setup(t)
	bookings := fakeBookings{{vocalistActor.ID, work.ID}: true}
	resolver := NewResolver(db, registry, fakeVocalists{vocalistActor.ID: true}, bookings)

	booked, err := resolver.CheckConflict(context.Background(), vocalistActor.ID, work.ID)
	require.NoError(t, err)
	assert.True(t, booked)

	booked, err = resolver.CheckConflict(context.Background(), vocalistActor.ID, work.ID+1)
	require.NoError(t, err)
	assert.False(t, booked)
}
