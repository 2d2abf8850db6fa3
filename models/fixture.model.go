package models

import (
	"time"
)

// Fixture is a scheduled or played match, keyed by the feed's fixture id.
// Rows are upserted on every sync cycle and never deleted.
type Fixture struct {
	ID            uint          `gorm:"primaryKey;autoIncrement:false" json:"id"`
	LeagueID      uint          `gorm:"not null;index" json:"league_id"`
	HomeID        uint          `gorm:"not null" json:"home_id"`
	AwayID        uint          `gorm:"not null" json:"away_id"`
	Date          *time.Time    `gorm:"default:NULL" json:"date"` // kickoff, stored in UTC, nil until scheduled
	HomeTeamScore *int          `gorm:"default:NULL" json:"home_team_score"`
	AwayTeamScore *int          `gorm:"default:NULL" json:"away_team_score"`
	HomePensScore *int          `gorm:"default:NULL" json:"home_pens_score"`
	AwayPensScore *int          `gorm:"default:NULL" json:"away_pens_score"`
	Status        FixtureStatus `gorm:"type:varchar(10)" json:"status"`
	Round         string        `gorm:"type:varchar(100);index:idx_fixtures_league_round,composite:league_id" json:"round"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`

	// Relationships
	League   League `gorm:"foreignKey:LeagueID" json:"-"`
	HomeTeam Team   `gorm:"foreignKey:HomeID" json:"-"`
	AwayTeam Team   `gorm:"foreignKey:AwayID" json:"-"`
}

// IsLocked reports whether predictions on this fixture are frozen: the match
// has a finished status, or its kickoff time is set and has passed. Kickoff
// times carry a feed offset and are normalized to UTC before comparison.
func (f *Fixture) IsLocked(now time.Time) bool {
	if f.Status.IsFinished() {
		return true
	}
	return f.HasStartedBySchedule(now)
}

// HasStartedBySchedule applies only the kickoff-time rule, ignoring status.
// Used where feed status may lag the clock. A nil kickoff means not started.
func (f *Fixture) HasStartedBySchedule(now time.Time) bool {
	if f.Date == nil {
		return false
	}
	return !f.Date.UTC().After(now.UTC())
}

// HasResult reports whether both goal counts have been filled in by the feed.
func (f *Fixture) HasResult() bool {
	return f.HomeTeamScore != nil && f.AwayTeamScore != nil
}
