package models

import (
	"time"
)

// User is a person who signs in through the identity provider
type User struct {
	BaseModel
	Email       string       `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	FullName    string       `json:"full_name" gorm:"size:200"`
	AvatarURL   string       `json:"avatar_url,omitempty" gorm:"size:500"`
	Role        UserRole     `json:"role" gorm:"type:varchar(20);not null;default:'developer';index"`
	ExternalID  string       `json:"external_id,omitempty" gorm:"size:100;index"`
	LastLoginAt *time.Time   `json:"last_login_at,omitempty"`
	Memberships []TeamMember `json:"memberships,omitempty" gorm:"foreignKey:UserID"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}

// IsAdmin reports whether the user has the admin role
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == UserRoleAdmin
}

// CanManage reports whether the user may manage teams and create one-on-ones
func (u *User) CanManage() bool {
	return u != nil && (u.Role == UserRoleManager || u.Role == UserRoleAdmin)
}
