package domain

import (
	"time"
)

// Role type to distinguish between user roles
type Role string

const (
	RoleCoach   Role = "coach"
	RoleAthlete Role = "athlete"
)

// User represents an account in the system (either a Coach or an Athlete).
type User struct {
	ID             string    `bson:"_id" json:"id" yaml:"id"`
	Email          string    `bson:"email" json:"email" yaml:"email"` // Should be unique
	Name           string    `bson:"name" json:"name" yaml:"name"`
	Role           Role      `bson:"role" json:"role" yaml:"role"`
	PasswordHash   string    `bson:"passwordHash" json:"-" yaml:"-"` // Never expose this via JSON
	AvatarURL      string    `bson:"avatarUrl,omitempty" json:"avatarUrl,omitempty" yaml:"avatarUrl"`
	Bio            string    `bson:"bio,omitempty" json:"bio,omitempty" yaml:"bio"`
	Location       string    `bson:"location,omitempty" json:"location,omitempty" yaml:"location"`
	Phone          string    `bson:"phone,omitempty" json:"phone,omitempty" yaml:"phone"`
	OrganizationID string    `bson:"organizationId,omitempty" json:"organizationId,omitempty" yaml:"organizationId"`
	CreatedAt      time.Time `bson:"createdAt" json:"createdAt" yaml:"-"`
	UpdatedAt      time.Time `bson:"updatedAt" json:"updatedAt" yaml:"-"`
}

func (u *User) IsCoach() bool {
	return u.Role == RoleCoach
}

func (u *User) IsAthlete() bool {
	return u.Role == RoleAthlete
}

// Session is a signed-in user's stay in the app. It is stored so that
// signing out revokes it even while its token has not expired.
type Session struct {
	ID        string    `bson:"_id" json:"id"`
	UserID    string    `bson:"userId" json:"userId"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	ExpiresAt time.Time `bson:"expiresAt" json:"expiresAt"`
}

// Expired reports whether the session is no longer usable at now.
func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
