package video

import "time"

// CachedVideo is a locally cached view of a published channel video, so
// the public site does not hit the YouTube API on every page load.
type CachedVideo struct {
	ID string `gorm:"primaryKey" json:"id"`

	Title     string `gorm:"not null" json:"title"`
	Writer    string `json:"writer"`
	Vocalist  string `json:"vocalist"`
	Thumbnail string `json:"thumbnail"`
	Views     string `json:"views"`
	Duration  string `json:"duration"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
