package services

import (
	"github.com/workforcehq/workforce-api/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openTestDB creates an in-memory SQLite database with the full schema.
func openTestDB() (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(
		&models.Sequence{},
		&models.Office{},
		&models.Role{},
		&models.Team{},
		&models.UserAccount{},
		&models.Task{},
	)
	if err != nil {
		return nil, err
	}
	return db, nil
}
