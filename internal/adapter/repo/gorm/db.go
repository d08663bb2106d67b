package gormrepo

import (
	"fmt"

	"colonyplan/internal/adapter/repo/gorm/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func OpenPostgres(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	return db, nil
}

// AutoMigrate creates or updates the planner tables.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.ConstructionState{},
		&model.DecisionEvent{},
	)
}
