package kalam

import (
	"context"
	"testing"

	"kalam-platform/internal/domain/errs"
	"kalam-platform/internal/domain/identity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&Work{}, &Submission{}))
	return db
}

func validInput() CreateWorkInput {
	return CreateWorkInput{
		Title:         "Dard-e-Dil",
		Language:      "Urdu",
		Theme:         "longing",
		BodyText:      "dil se nikli baat",
		Description:   "a short kalam about longing",
		InfluenceTag:  "classical",
		PreferenceTag: "qawwali",
	}
}

var (
	writerActor   = identity.Actor{ID: 1, Role: identity.RoleWriter}
	otherWriter   = identity.Actor{ID: 2, Role: identity.RoleWriter}
	vocalistActor = identity.Actor{ID: 7, Role: identity.RoleVocalist}
	adminActor    = identity.Actor{ID: 9, Role: identity.RoleAdmin}
	subAdminActor = identity.Actor{ID: 10, Role: identity.RoleSubAdmin}
)

func TestCreateAutoSubmits(t *testing.T) {
	db := newTestDB(t)
	registry := NewRegistry(db)
	ctx := context.Background()

	work, sub, err := registry.Create(ctx, writerActor.ID, validInput())
	require.NoError(t, err)

	assert.Equal(t, StatusSubmitted, sub.Status)
	require.NotNil(t, sub.WriterApproval)
	assert.Equal(t, ApprovalPending, *sub.WriterApproval)
	assert.Nil(t, sub.VocalistApproval)
	assert.Equal(t, work.ID, sub.WorkID)
	assert.Nil(t, work.VocalistID)
	assert.Nil(t, work.PublishLink)

	// 1:1 invariant holds from birth
	fetched, err := registry.GetSubmissionByWork(ctx, work.ID)
	require.NoError(t, err)
	assert.Equal(t, sub.ID, fetched.ID)
}

func TestCreateValidation(t *testing.T) {
	db := newTestDB(t)
	registry := NewRegistry(db)

	in := validInput()
	in.BodyText = ""
	_, _, err := registry.Create(context.Background(), writerActor.ID, in)

	var verr *errs.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "body_text", verr.Field)

	// nothing was written
	var count int64
	require.NoError(t, db.Model(&Work{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestUpdatePartialFields(t *testing.T) {
	db := newTestDB(t)
	registry := NewRegistry(db)
	ctx := context.Background()

	work, _, err := registry.Create(ctx, writerActor.ID, validInput())
	require.NoError(t, err)

	title := "Dard-e-Dil (revised)"
	updated, err := registry.Update(ctx, work.ID, UpdateWorkInput{Title: &title}, writerActor)
	require.NoError(t, err)

	assert.Equal(t, title, updated.Title)
	// omitted fields stay untouched
	assert.Equal(t, work.BodyText, updated.BodyText)
	assert.Equal(t, work.Theme, updated.Theme)
}

func TestUpdateNoFields(t *testing.T) {
	db := newTestDB(t)
	registry := NewRegistry(db)
	ctx := context.Background()

	work, _, err := registry.Create(ctx, writerActor.ID, validInput())
	require.NoError(t, err)

	_, err = registry.Update(ctx, work.ID, UpdateWorkInput{}, writerActor)
	var verr *errs.ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestUpdateOwnership(t *testing.T) {
	db := newTestDB(t)
	registry := NewRegistry(db)
	ctx := context.Background()

	work, _, err := registry.Create(ctx, writerActor.ID, validInput())
	require.NoError(t, err)

	title := "hijacked"
	_, err = registry.Update(ctx, work.ID, UpdateWorkInput{Title: &title}, otherWriter)
	var aerr *errs.AuthorizationError
	require.ErrorAs(t, err, &aerr)

	// admins are not subject to the ownership check
	_, err = registry.Update(ctx, work.ID, UpdateWorkInput{Title: &title}, adminActor)
	require.NoError(t, err)
}

func TestUpdateLockedAfterApproval(t *testing.T) {
	db := newTestDB(t)
	registry := NewRegistry(db)
	machine := NewStateMachine(db, registry)
	ctx := context.Background()

	work, sub, err := registry.Create(ctx, writerActor.ID, validInput())
	require.NoError(t, err)

	_, err = machine.SetStatus(ctx, sub.ID, StatusFinalApproved, nil, adminActor)
	require.NoError(t, err)

	title := "too late"
	_, err = registry.Update(ctx, work.ID, UpdateWorkInput{Title: &title}, writerActor)
	var perr *errs.PreconditionError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, string(StatusFinalApproved), perr.Current)
}

func TestUpdateMissingWork(t *testing.T) {
	db := newTestDB(t)
	registry := NewRegistry(db)

	title := "nothing here"
	_, err := registry.Update(context.Background(), 42, UpdateWorkInput{Title: &title}, writerActor)
	var nerr *errs.NotFoundError
	require.ErrorAs(t, err, &nerr)
}

func TestGetIdempotent(t *testing.T) {
	db := newTestDB(t)
	registry := NewRegistry(db)
	ctx := context.Background()

	work, sub, err := registry.Create(ctx, writerActor.ID, validInput())
	require.NoError(t, err)

	w1, err := registry.Get(ctx, work.ID)
	require.NoError(t, err)
	w2, err := registry.Get(ctx, work.ID)
	require.NoError(t, err)
	assert.Equal(t, w1, w2)

	s1, err := registry.GetSubmission(ctx, sub.ID)
	require.NoError(t, err)
	s2, err := registry.GetSubmission(ctx, sub.ID)
	require.NoError(t, err)
	assert.Equal(t, s1, s2)
}

func TestListPosted(t *testing.T) {
	db := newTestDB(t)
	registry := NewRegistry(db)
	machine := NewStateMachine(db, registry)
	ctx := context.Background()

	// one posted, one still in review
	work, sub, err := registry.Create(ctx, writerActor.ID, validInput())
	require.NoError(t, err)
	_, _, err = registry.Create(ctx, writerActor.ID, validInput())
	require.NoError(t, err)

	_, err = machine.SetStatus(ctx, sub.ID, StatusFinalApproved, nil, adminActor)
	require.NoError(t, err)
	require.NoError(t, db.Model(&Work{}).Where("id = ?", work.ID).Update("vocalist_id", vocalistActor.ID).Error)
	_, _, err = machine.VocalistRespond(ctx, sub.ID, ApprovalApproved, vocalistActor)
	require.NoError(t, err)
	_, _, err = machine.PostPublishLink(ctx, work.ID, "https://youtu.be/abc123", adminActor)
	require.NoError(t, err)

	posted, err := registry.ListPosted(ctx, 0, 10)
	require.NoError(t, err)
	require.Len(t, posted, 1)
	assert.Equal(t, work.ID, posted[0].ID)
}
