package models

import (
	"gorm.io/gorm"
)

// Prediction is a user's forecast of a fixture's score. One row per
// (user, fixture) pair, enforced by a unique index so concurrent creates
// collide at the storage layer.
type Prediction struct {
	gorm.Model
	UserID        uint `gorm:"not null;uniqueIndex:idx_predictions_user_fixture" json:"user_id"`
	FixtureID     uint `gorm:"not null;uniqueIndex:idx_predictions_user_fixture" json:"fixture_id"`
	GoalsHome     int  `gorm:"not null" json:"goals_home"`
	GoalsAway     int  `gorm:"not null" json:"goals_away"`
	PenaltiesHome *int `gorm:"default:NULL" json:"penalties_home"`
	PenaltiesAway *int `gorm:"default:NULL" json:"penalties_away"`
	Points        *int `gorm:"default:NULL" json:"points"` // nil until the fixture is scored

	User    User    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Fixture Fixture `gorm:"foreignKey:FixtureID;constraint:OnDelete:CASCADE" json:"-"`
}
