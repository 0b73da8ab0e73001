package scheduling

import "time"

// StudioVisitRequest is a vocalist's request to record a kalam in the
// studio.
type StudioVisitRequest struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	VocalistID uint `gorm:"not null;index:idx_studio_visits_vocalist_work" json:"vocalist_id"`
	WorkID     uint `gorm:"not null;index:idx_studio_visits_vocalist_work" json:"work_id"`

	Name          string  `gorm:"not null" json:"name"`
	Email         string  `gorm:"not null" json:"email"`
	Organization  *string `json:"organization,omitempty"`
	ContactNumber *string `json:"contact_number,omitempty"`

	PreferredDate    *time.Time `json:"preferred_date,omitempty"`
	PreferredTime    *string    `json:"preferred_time,omitempty"`
	Purpose          *string    `json:"purpose,omitempty"`
	NumberOfVisitors *string    `json:"number_of_visitors,omitempty"`

	AdditionalDetails *string `gorm:"type:text" json:"additional_details,omitempty"`
	SpecialRequests   *string `gorm:"type:text" json:"special_requests,omitempty"`

	Status string `gorm:"type:varchar(16);not null;default:'pending'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RemoteRecordingRequest is a vocalist's request to record a kalam
// remotely.
type RemoteRecordingRequest struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	VocalistID uint `gorm:"not null;index:idx_remote_recordings_vocalist_work" json:"vocalist_id"`
	WorkID     uint `gorm:"not null;index:idx_remote_recordings_vocalist_work" json:"work_id"`

	Name     string  `gorm:"not null" json:"name"`
	Email    string  `gorm:"not null" json:"email"`
	City     *string `json:"city,omitempty"`
	Country  *string `json:"country,omitempty"`
	TimeZone *string `json:"time_zone,omitempty"`
	Role     *string `json:"role,omitempty"`

	ProjectType        *string `json:"project_type,omitempty"`
	RecordingEquipment *string `json:"recording_equipment,omitempty"`
	InternetSpeed      *string `json:"internet_speed,omitempty"`
	PreferredSoftware  *string `json:"preferred_software,omitempty"`
	Availability       *string `json:"availability,omitempty"`
	RecordingExperience *string `gorm:"type:text" json:"recording_experience,omitempty"`
	TechnicalSetup      *string `gorm:"type:text" json:"technical_setup,omitempty"`
	AdditionalDetails   *string `gorm:"type:text" json:"additional_details,omitempty"`

	Status string `gorm:"type:varchar(16);not null;default:'pending'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
