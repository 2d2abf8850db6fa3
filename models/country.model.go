package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Country is a feed country. The feed identifies countries by name only, so
// the primary key is generated locally.
type Country struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name string    `gorm:"type:varchar(100);unique" json:"name"`
	Code string    `gorm:"type:varchar(10)" json:"code"`
	Flag string    `gorm:"type:text" json:"flag"`
}

func (c *Country) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
