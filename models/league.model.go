package models

// League is a feed league, keyed by the feed's league id.
type League struct {
	ID          uint   `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Name        string `gorm:"type:varchar(100)" json:"name"`
	CountryName string `gorm:"type:varchar(100);not null" json:"country"`
	Logo        string `gorm:"type:text" json:"logo"`
	Season      int    `gorm:"not null" json:"season"`
}
