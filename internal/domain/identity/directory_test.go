package identity

import (
	"context"
	"testing"

	"kalam-platform/internal/domain/errs"

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

	require.NoError(t, db.AutoMigrate(&User{}))
	return db
}

func TestResolve(t *testing.T) {
	db := newTestDB(t)
	dir := NewDirectory(db)

	u := User{Name: "Asim", Email: "asim@example.com", Role: RoleWriter}
	require.NoError(t, db.Create(&u).Error)

	actor, err := dir.Resolve(context.Background(), u.ID)
	require.NoError(t, err)
	assert.Equal(t, u.ID, actor.ID)
	assert.Equal(t, RoleWriter, actor.Role)
}

func TestResolveUnknownUser(t *testing.T) {
	db := newTestDB(t)
	dir := NewDirectory(db)

	_, err := dir.Resolve(context.Background(), 99)
	var nerr *errs.NotFoundError
	require.ErrorAs(t, err, &nerr)
	assert.Equal(t, "user", nerr.Entity)
	assert.Equal(t, uint(99), nerr.ID)
}

func TestParseRole(t *testing.T) {
	for _, valid := range []string{"writer", "vocalist", "admin", "sub-admin"} {
		role, ok := ParseRole(valid)
		require.True(t, ok, valid)
		assert.Equal(t, valid, string(role))
	}

	_, ok := ParseRole("superuser")
	assert.False(t, ok)
	_, ok = ParseRole("")
	assert.False(t, ok)
}

func TestRolePredicates(t *testing.T) {
	assert.True(t, RoleAdmin.CanModerate())
	assert.True(t, RoleSubAdmin.CanModerate())
	assert.False(t, RoleWriter.CanModerate())
	assert.False(t, RoleVocalist.CanModerate())

	assert.True(t, RoleWriter.IsWriter())
	assert.False(t, RoleVocalist.IsWriter())
	assert.True(t, RoleVocalist.IsVocalist())
	assert.False(t, RoleAdmin.IsVocalist())
}
