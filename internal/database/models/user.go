package models

import "time"

// User represents a registered member of the platform. Authentication is
// handled by an external identity provider; the API boundary resolves the
// JWT subject to one of these rows.
type User struct {
	ID            int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Username      string    `json:"username" gorm:"size:50;uniqueIndex;not null" validate:"required,min=1,max=50"`
	Nickname      string    `json:"nickname" gorm:"size:50;not null" validate:"required,min=1,max=50"`
	ProfileImgURL string    `json:"profile_img_url" gorm:"size:500"`
	CreatedAt     time.Time `json:"created_at"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}

// ProfileImgURLOrDefault returns the profile image URL or a placeholder.
func (u *User) ProfileImgURLOrDefault() string {
	if u.ProfileImgURL != "" {
		return u.ProfileImgURL
	}
	return "https://placehold.co/600x600?text=U_U"
}
