package profiles

import (
	"context"
	"errors"

	"kalam-platform/internal/domain/errs"

	"gorm.io/gorm"
)

// Registry owns writer and vocalist profile records.
type Registry struct {
	db *gorm.DB
}

func NewRegistry(db *gorm.DB) *Registry {
	return &Registry{db: db}
}

// Exists reports whether the user has a registered vocalist profile.
// Feeds the assignment resolver.
func (r *Registry) Exists(ctx context.Context, userID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&VocalistProfile{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count > 0, err
}

func (r *Registry) GetVocalist(ctx context.Context, userID uint) (*VocalistProfile, error) {
	var p VocalistProfile
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &errs.NotFoundError{Entity: "vocalist profile", ID: userID}
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Registry) GetWriter(ctx context.Context, userID uint) (*WriterProfile, error) {
	var p WriterProfile
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &errs.NotFoundError{Entity: "writer profile", ID: userID}
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Registry) IsWriterRegistered(ctx context.Context, userID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&WriterProfile{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count > 0, err
}

// UpsertWriter creates the profile on first submit and applies a partial
// update afterwards: empty fields leave existing values untouched.
func (r *Registry) UpsertWriter(ctx context.Context, in WriterProfile) (*WriterProfile, error) {
	db := r.db.WithContext(ctx)

	var existing WriterProfile
	err := db.Where("user_id = ?", in.UserID).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		if err := db.Create(&in).Error; err != nil {
			return nil, err
		}
		return &in, nil
	}
	if err != nil {
		return nil, err
	}

	updates := map[string]any{}
	set := func(col, v string) {
		if v != "" {
			updates[col] = v
		}
	}
	set("writing_styles", in.WritingStyles)
	set("languages", in.Languages)
	set("sample_title", in.SampleTitle)
	set("experience_background", in.ExperienceBackground)
	set("portfolio", in.Portfolio)
	set("availability", in.Availability)

	if len(updates) > 0 {
		if err := db.Model(&existing).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return r.GetWriter(ctx, in.UserID)
}

func (r *Registry) UpsertVocalist(ctx context.Context, in VocalistProfile) (*VocalistProfile, error) {
	db := r.db.WithContext(ctx)

	var existing VocalistProfile
	err := db.Where("user_id = ?", in.UserID).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		if in.Status == "" {
			in.Status = "pending"
		}
		if err := db.Create(&in).Error; err != nil {
			return nil, err
		}
		return &in, nil
	}
	if err != nil {
		return nil, err
	}

	updates := map[string]any{}
	set := func(col, v string) {
		if v != "" {
			updates[col] = v
		}
	}
	set("vocal_range", in.VocalRange)
	set("languages", in.Languages)
	set("sample_title", in.SampleTitle)
	set("audio_sample_url", in.AudioSampleURL)
	set("sample_description", in.SampleDescription)
	set("experience_background", in.ExperienceBackground)
	set("portfolio", in.Portfolio)
	set("availability", in.Availability)

	if len(updates) > 0 {
		if err := db.Model(&existing).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return r.GetVocalist(ctx, in.UserID)
}

// SetVocalistStatus records the admin's approve/reject decision on a
// vocalist profile.
func (r *Registry) SetVocalistStatus(ctx context.Context, userID uint, status string) error {
	if status != "approved" && status != "rejected" {
		return &errs.ValidationError{Field: "status", Reason: "must be 'approved' or 'rejected'"}
	}
	res := r.db.WithContext(ctx).
		Model(&VocalistProfile{}).
		Where("user_id = ?", userID).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return &errs.NotFoundError{Entity: "vocalist profile", ID: userID}
	}
	return nil
}

// ListWriters returns writer profiles newest first, paginated.
func (r *Registry) ListWriters(ctx context.Context, offset, limit int) ([]WriterProfile, error) {
	var out []WriterProfile
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&out).Error
	return out, err
}
