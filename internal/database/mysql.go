package database

import (
	"fmt"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"tips-service/internal/models"
)

// NewMySQLConnection opens the gorm handle, migrates the schema and tunes the
// connection pool. The vote engine relies on InnoDB row locks, so the DSN
// must point at a transactional engine.
func NewMySQLConnection(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		PrepareStmt:            true,
		SkipDefaultTransaction: true, // single-statement reads don't need a wrapping tx
		AllowGlobalUpdate:      false,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Post{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	if err := addIndexes(db); err != nil {
		return nil, fmt.Errorf("failed to add indexes: %w", err)
	}

	return db, nil
}

func addIndexes(db *gorm.DB) error {
	// Listing endpoints sort by these columns.
	indexes := []struct {
		name    string
		table   string
		columns string
	}{
		{"idx_posts_created_at", "posts", "created_at"},
		{"idx_posts_helpful_count", "posts", "helpful_count"},
	}

	for _, idx := range indexes {
		stmt := fmt.Sprintf("CREATE INDEX %s ON %s (%s)", idx.name, idx.table, idx.columns)
		if err := db.Exec(stmt).Error; err != nil {
			if db.Migrator().HasIndex(idx.table, idx.name) {
				continue
			}
			return err
		}
	}

	return nil
}
