package models

import (
	"time"

	"gorm.io/gorm"
)

// Session represents the sessions table. The upstream bearer token is
// stored sealed; the profile columns cache what /auth/login returned.
type Session struct {
	ID          string     `gorm:"primaryKey;size:36" json:"id"`
	SealedToken string     `gorm:"type:text;not null" json:"sealed_token"`
	UserID      string     `gorm:"size:64;index;not null" json:"user_id"`
	Email       string     `gorm:"size:100" json:"email"`
	Username    string     `gorm:"size:100" json:"username"`
	Name        string     `gorm:"size:150" json:"name"`
	Role        string     `gorm:"size:20" json:"role"`
	ExpiresAt   time.Time  `gorm:"not null;index" json:"expires_at"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
	RevokedAt   *time.Time `gorm:"index" json:"revoked_at,omitempty"`
}

func (Session) TableName() string {
	return "sessions"
}

func (s *Session) IsRevoked() bool {
	return s.RevokedAt != nil
}

// IsExpired reports whether the session has reached its expiry at now
func (s *Session) IsExpired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// AutoMigrate runs auto migration for the tables this service owns.
// Business data lives on the LPS backend and is never migrated here.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Session{},
	)
}
