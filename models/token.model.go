package models

import (
	"time"

	"gorm.io/gorm"
)

// Token is a persisted refresh token. Access tokens are stateless JWTs;
// refresh tokens are stored so they can be revoked on logout.
type Token struct {
	gorm.Model
	UserID       uint      `gorm:"not null;index" json:"user_id"`
	RefreshToken string    `gorm:"unique;not null" json:"-"`
	Revoked      bool      `gorm:"default:false" json:"revoked"`
	ExpiresAt    time.Time `gorm:"not null" json:"expires_at"`
	UserAgent    string    `gorm:"default:''" json:"user_agent"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}
