package kalam

import "time"

// Work is the canonical record of a kalam: the writer's text plus the
// vocalist linkage and publish state maintained by the workflow.
type Work struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Title         string `gorm:"not null" json:"title"`
	Language      string `gorm:"not null" json:"language"`
	Theme         string `gorm:"not null" json:"theme"`
	BodyText      string `gorm:"column:body_text;type:text;not null" json:"body_text"`
	Description   string `gorm:"type:text;not null" json:"description"`
	InfluenceTag  string `gorm:"column:influence_tag;not null" json:"influence_tag"`
	PreferenceTag string `gorm:"column:preference_tag;not null" json:"preference_tag"`

	WriterID   uint  `gorm:"not null;index" json:"writer_id"`
	VocalistID *uint `gorm:"index" json:"vocalist_id,omitempty"`

	PublishLink *string    `gorm:"column:publish_link" json:"publish_link,omitempty"`
	PublishedAt *time.Time `json:"published_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
