package repository

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"ponyexpress/backend/internal/model"
)

// NewDB opens the store and creates the schema from the entity definitions.
// The default driver is sqlite with a local database file; postgres is
// selectable via config for deployments that already run one.
func NewDB(driver, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case "postgres":
		dialector = postgres.Open(dsn)
	case "sqlite", "":
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	return db, nil
}

// Migrate auto-creates the tables and the membership join table. There is no
// migration system; the schema follows the entity definitions.
func Migrate(db *gorm.DB) error {
	if err := db.SetupJoinTable(&model.User{}, "Chats", &model.UserChatLink{}); err != nil {
		return err
	}
	if err := db.SetupJoinTable(&model.Chat{}, "Users", &model.UserChatLink{}); err != nil {
		return err
	}
	return db.AutoMigrate(&model.User{}, &model.Chat{}, &model.Message{})
}
