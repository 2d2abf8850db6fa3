package services

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UpsertByKey inserts or fully updates rows carrying feed-stable primary
// keys (leagues, teams, fixtures). Conflicting inserts update every
// non-key column, which keeps the daily sync idempotent: running the same
// feed batch twice converges on identical rows.
func UpsertByKey[T any](db *gorm.DB, rows []T) error {
	if len(rows) == 0 {
		return nil
	}
	err := db.Clauses(clause.OnConflict{
		UpdateAll: true,
	}).Create(&rows).Error
	return translateDBError(err)
}

// UpsertByColumns is UpsertByKey for entities whose natural key is not the
// primary key (countries match on name, rounds on league+season+name).
func UpsertByColumns[T any](db *gorm.DB, rows []T, columns []string) error {
	if len(rows) == 0 {
		return nil
	}
	conflictCols := make([]clause.Column, 0, len(columns))
	for _, column := range columns {
		conflictCols = append(conflictCols, clause.Column{Name: column})
	}
	err := db.Clauses(clause.OnConflict{
		Columns:   conflictCols,
		UpdateAll: true,
	}).Create(&rows).Error
	return translateDBError(err)
}
