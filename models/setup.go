package models

import (
	"fmt"
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// Connect opens the MySQL store from DATABASE_URL. The handle is constructed
// once at process start and passed to whoever needs it; this package keeps no
// global connection state.
func Connect() (*gorm.DB, error) {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is not set")
	}

	db, err := gorm.Open(mysql.Open(dbURL), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// Migrate creates or updates the schema for every entity in this package.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Employee{},
		&ShiftDefinition{},
		&WorkSession{},
		&BreakInterval{},
		&DailyAttendanceRecord{},
		&LeaveRequest{},
		&Holiday{},
		&Setting{},
		&BackfillAudit{},
	)
}
