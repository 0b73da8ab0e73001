package identity

import (
	"context"
	"errors"

	"kalam-platform/internal/domain/errs"

	"gorm.io/gorm"
)

// Actor is the resolved view of an authenticated user that the workflow
// core consumes: an opaque id plus exactly one role.
type Actor struct {
	ID   uint
	Role Role
}

// Directory resolves actor references against the users table.
type Directory struct {
	db *gorm.DB
}

func NewDirectory(db *gorm.DB) *Directory {
	return &Directory{db: db}
}

func (d *Directory) Resolve(ctx context.Context, userID uint) (Actor, error) {
	var u User
	err := d.db.WithContext(ctx).Select("id", "role").First(&u, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Actor{}, &errs.NotFoundError{Entity: "user", ID: userID}
	}
	if err != nil {
		return Actor{}, err
	}
	return Actor{ID: u.ID, Role: u.Role}, nil
}
