package outreach

import "time"

// GuestPost is a blog entry contributed by a registered user.
type GuestPost struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"not null;index" json:"user_id"`

	Title    string  `gorm:"not null" json:"title"`
	Role     *string `json:"role,omitempty"`
	City     *string `json:"city,omitempty"`
	Country  *string `json:"country,omitempty"`
	Category *string `json:"category,omitempty"`
	Excerpt  *string `gorm:"type:text" json:"excerpt,omitempty"`
	Content  *string `gorm:"type:text" json:"content,omitempty"`
	Tags     string  `gorm:"type:text" json:"tags,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
