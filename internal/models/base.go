package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// StateSnapshot is the single persisted row: the full domain state
// serialized as JSON. It is rewritten after every mutation and read once
// at process start.
type StateSnapshot struct {
	ID        uint           `gorm:"primaryKey"`
	Data      datatypes.JSON `gorm:"type:json"`
	UpdatedAt time.Time
}

// InitDB initializes the snapshot database connection
func InitDB(config DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(config.DSN), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&StateSnapshot{}); err != nil {
		return nil, err
	}

	return db, nil
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	DSN string
}
