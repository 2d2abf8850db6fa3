package models

// Round is a league round label for a season (e.g. "Regular Season - 14").
type Round struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"type:varchar(100);uniqueIndex:idx_rounds_league_season_name" json:"name"`
	LeagueID uint   `gorm:"not null;uniqueIndex:idx_rounds_league_season_name" json:"league_id"`
	Season   int    `gorm:"not null;uniqueIndex:idx_rounds_league_season_name" json:"season"`

	League League `gorm:"foreignKey:LeagueID" json:"-"`
}
