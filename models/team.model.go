package models

// Team is a feed team, keyed by the feed's team id.
type Team struct {
	ID       uint   `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Name     string `gorm:"type:varchar(100);not null" json:"name"`
	LeagueID uint   `gorm:"not null;index" json:"league_id"`
	LogoURL  string `gorm:"type:varchar(500)" json:"logo_url"`

	League League `gorm:"foreignKey:LeagueID" json:"-"`
}
