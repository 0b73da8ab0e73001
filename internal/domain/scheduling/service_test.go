package scheduling

import (
	"context"
	"testing"

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

	require.NoError(t, db.AutoMigrate(&StudioVisitRequest{}, &RemoteRecordingRequest{}))
	return db
}

func TestHasOpenRequest(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db)
	ctx := context.Background()

	require.NoError(t, svc.CreateStudioVisit(ctx, &StudioVisitRequest{
		VocalistID: 7, WorkID: 1, Name: "Hina", Email: "hina@example.com",
	}))
	require.NoError(t, svc.CreateRemoteRecording(ctx, &RemoteRecordingRequest{
		VocalistID: 7, WorkID: 2, Name: "Hina", Email: "hina@example.com",
	}))

	// matches across both request kinds
	booked, err := svc.HasOpenRequest(ctx, 7, 1)
	require.NoError(t, err)
	assert.True(t, booked)

	booked, err = svc.HasOpenRequest(ctx, 7, 2)
	require.NoError(t, err)
	assert.True(t, booked)

	booked, err = svc.HasOpenRequest(ctx, 7, 3)
	require.NoError(t, err)
	assert.False(t, booked)

	booked, err = svc.HasOpenRequest(ctx, 8, 1)
	require.NoError(t, err)
	assert.False(t, booked)
}

func TestVocalistScopedListings(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db)
	ctx := context.Background()

	require.NoError(t, svc.CreateStudioVisit(ctx, &StudioVisitRequest{
		VocalistID: 7, WorkID: 1, Name: "Hina", Email: "hina@example.com",
	}))
	require.NoError(t, svc.CreateStudioVisit(ctx, &StudioVisitRequest{
		VocalistID: 8, WorkID: 1, Name: "Bilal", Email: "bilal@example.com",
	}))

	mine, err := svc.ListStudioVisitsByVocalist(ctx, 7)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, uint(7), mine[0].VocalistID)
	assert.Equal(t, "pending", mine[0].Status)

	all, err := svc.ListStudioVisits(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
