package profiles

import "time"

// WriterProfile is the writer's application record, keyed by user.
type WriterProfile struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"not null;uniqueIndex:idx_writer_profiles_user" json:"user_id"`

	WritingStyles        string `gorm:"type:text" json:"writing_styles"`
	Languages            string `gorm:"type:text" json:"languages"`
	SampleTitle          string `json:"sample_title"`
	ExperienceBackground string `gorm:"type:text" json:"experience_background"`
	Portfolio            string `json:"portfolio"`
	Availability         string `json:"availability"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// VocalistProfile is the vocalist's application record. Status tracks the
// admin's approval of the profile itself, not of any work assignment.
type VocalistProfile struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"not null;uniqueIndex:idx_vocalist_profiles_user" json:"user_id"`

	VocalRange           string `json:"vocal_range"`
	Languages            string `gorm:"type:text" json:"languages"`
	SampleTitle          string `json:"sample_title"`
	AudioSampleURL       string `json:"audio_sample_url"`
	SampleDescription    string `gorm:"type:text" json:"sample_description"`
	ExperienceBackground string `gorm:"type:text" json:"experience_background"`
	Portfolio            string `json:"portfolio"`
	Availability         string `json:"availability"`

	Status string `gorm:"type:varchar(16);not null;default:'pending'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
