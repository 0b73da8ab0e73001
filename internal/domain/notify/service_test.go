package notify

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

	require.NoError(t, db.AutoMigrate(&Notification{}, &NotificationRead{}))
	return db
}

func TestCreateValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db)
	ctx := context.Background()

	var verr *errs.ValidationError

	_, err := svc.Create(ctx, "t", "m", "everyone", nil)
	require.ErrorAs(t, err, &verr)

	_, err = svc.Create(ctx, "t", "m", TargetSpecific, nil)
	require.ErrorAs(t, err, &verr)

	n, err := svc.Create(ctx, "t", "m", TargetSpecific, []uint{4, 12})
	require.NoError(t, err)
	assert.Equal(t, "4,12", n.SpecificUsers)
}

func TestListForUserTargeting(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db)
	ctx := context.Background()

	_, err := svc.Create(ctx, "for everyone", "m", TargetAll, nil)
	require.NoError(t, err)
	_, err = svc.Create(ctx, "for writers", "m", TargetWriters, nil)
	require.NoError(t, err)
	_, err = svc.Create(ctx, "for vocalists", "m", TargetVocalists, nil)
	require.NoError(t, err)
	_, err = svc.Create(ctx, "for user 4", "m", TargetSpecific, []uint{4, 12})
	require.NoError(t, err)
	// user 40 must not match the "4" entry by substring
	_, err = svc.Create(ctx, "for user 40", "m", TargetSpecific, []uint{40})
	require.NoError(t, err)

	titles := func(views []UserView) []string {
		out := make([]string, 0, len(views))
		for _, v := range views {
			out = append(out, v.Title)
		}
		return out
	}

	writerViews, err := svc.ListForUser(ctx, 4, identity.RoleWriter)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"for everyone", "for writers", "for user 4"}, titles(writerViews))

	vocalistViews, err := svc.ListForUser(ctx, 40, identity.RoleVocalist)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"for everyone", "for vocalists", "for user 40"}, titles(vocalistViews))

	adminViews, err := svc.ListForUser(ctx, 9, identity.RoleAdmin)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"for everyone"}, titles(adminViews))
}

func TestMarkReadOnce(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db)
	ctx := context.Background()

	n, err := svc.Create(ctx, "t", "m", TargetAll, nil)
	require.NoError(t, err)

	require.NoError(t, svc.MarkRead(ctx, n.ID, 4))

	views, err := svc.ListForUser(ctx, 4, identity.RoleWriter)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.True(t, views[0].Read)

	// read state is per user
	views, err = svc.ListForUser(ctx, 5, identity.RoleWriter)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.False(t, views[0].Read)

	var nerr *errs.NotFoundError
	require.ErrorAs(t, svc.MarkRead(ctx, n.ID, 4), &nerr)
	require.ErrorAs(t, svc.MarkRead(ctx, 999, 4), &nerr)
}
