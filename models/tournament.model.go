package models

import (
	"gorm.io/gorm"
)

// Tournament is a league-scoped competition among users, ranked by
// prediction points.
type Tournament struct {
	gorm.Model
	Name            string `gorm:"type:varchar(100);not null" json:"name"`
	Description     string `gorm:"type:text" json:"description"`
	IsPublic        bool   `gorm:"not null" json:"is_public"`
	CreatorID       uint   `gorm:"not null;index" json:"creator_id"`
	LeagueID        uint   `gorm:"not null;index" json:"league_id"`
	MaxParticipants int    `gorm:"default:100;not null" json:"max_participants"`

	Creator      User                    `gorm:"foreignKey:CreatorID" json:"-"`
	League       League                  `gorm:"foreignKey:LeagueID" json:"-"`
	Participants []TournamentParticipant `gorm:"foreignKey:TournamentID;constraint:OnDelete:CASCADE" json:"-"`
}
