package models

import (
	"time"
)

// TournamentParticipant joins a user to a tournament, unique per pair.
type TournamentParticipant struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	TournamentID uint      `gorm:"not null;uniqueIndex:idx_tournament_user" json:"tournament_id"`
	UserID       uint      `gorm:"not null;uniqueIndex:idx_tournament_user" json:"user_id"`
	JoinedAt     time.Time `gorm:"autoCreateTime" json:"joined_at"`

	Tournament Tournament `gorm:"foreignKey:TournamentID;constraint:OnDelete:CASCADE" json:"-"`
	User       User       `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}
