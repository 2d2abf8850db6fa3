package models

import (
	"time"

	"gorm.io/gorm"
)

// SyncState records the last successful run of a background job so the
// daily-cadence gate survives process restarts.
type SyncState struct {
	gorm.Model
	JobName   string     `gorm:"unique;not null" json:"job_name"`
	LastRunAt *time.Time `gorm:"default:NULL" json:"last_run_at"`
}
