package models

import "time"

// UserProfile is a member profile exposed by the public lookup endpoint.
type UserProfile struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	FullName  string    `gorm:"size:255;not null" json:"full_name"`
	Email     string    `gorm:"size:255;not null" json:"email"`
	Role      string    `gorm:"size:50" json:"role"`
	Status    string    `gorm:"size:20" json:"status"`
	JoinedAt  time.Time `json:"joined_at"`
	AvatarURL string    `gorm:"size:2048" json:"avatar_url"`
}
