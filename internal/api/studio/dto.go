package studio

import "time"

type StudioVisitRequestInput struct {
	VocalistID uint   `json:"vocalist_id" binding:"required"`
	KalamID    uint   `json:"kalam_id" binding:"required"`
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`

	Organization  *string `json:"organization"`
	ContactNumber *string `json:"contact_number"`

	PreferredDate    *time.Time `json:"preferred_date"`
	PreferredTime    *string    `json:"preferred_time"`
	Purpose          *string    `json:"purpose"`
	NumberOfVisitors *string    `json:"number_of_visitors"`

	AdditionalDetails *string `json:"additional_details"`
	SpecialRequests   *string `json:"special_requests"`
}

type RemoteRecordingRequestInput struct {
	VocalistID uint   `json:"vocalist_id" binding:"required"`
	KalamID    uint   `json:"kalam_id" binding:"required"`
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`

	City     *string `json:"city"`
	Country  *string `json:"country"`
	TimeZone *string `json:"time_zone"`
	Role     *string `json:"role"`

	ProjectType         *string `json:"project_type"`
	RecordingEquipment  *string `json:"recording_equipment"`
	InternetSpeed       *string `json:"internet_speed"`
	PreferredSoftware   *string `json:"preferred_software"`
	Availability        *string `json:"availability"`
	RecordingExperience *string `json:"recording_experience"`
	TechnicalSetup      *string `json:"technical_setup"`
	AdditionalDetails   *string `json:"additional_details"`
}
