package database

import (
	"fmt"
	"log"
	"strings"

	"cafeapi/config"
	"cafeapi/model"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const pragmas = "_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"

// Open connects to the SQLite file named in cfg and creates the cafe table
// if it does not exist yet.
func Open(cfg *config.Config) (*gorm.DB, error) {
	level, err := cfg.GormLogLevel()
	if err != nil {
		return nil, err
	}
	return OpenPath(cfg.DatabasePath, level)
}

// OpenPath is Open without the config layer.
func OpenPath(path string, level logger.LogLevel) (*gorm.DB, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("database path is required")
	}

	db, err := gorm.Open(sqlite.Open(dsn(path)), &gorm.Config{
		Logger:         logger.Default.LogMode(level),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql db: %w", err)
	}
	// SQLite has a single writer; one connection keeps writes serialized.
	sqlDB.SetMaxOpenConns(1)
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	if err := db.AutoMigrate(&model.Cafe{}); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("create cafe table: %w", err)
	}

	log.Printf("Database ready at %s", path)
	return db, nil
}

// Close releases the connection pool behind db.
func Close(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func dsn(path string) string {
	if path == ":memory:" {
		return path
	}
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + pragmas
}
