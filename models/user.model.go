package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username  string     `gorm:"unique;not null" json:"username"`
	Email     string     `gorm:"unique;not null" json:"email"`
	Password  string     `gorm:"not null" json:"-"`
	Role      string     `gorm:"default:'USER'" json:"role"` // USER, ADMIN
	LastLogin *time.Time `gorm:"default:NULL" json:"last_login"`
	IsDeleted bool       `gorm:"default:false" json:"-"`
}
