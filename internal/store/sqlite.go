package store

import (
	"errors"
	"fmt"
	"io"
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"
)

// Entry is one row of the kv_entries table.
type Entry struct {
	Key   string `gorm:"primaryKey;column:key"`
	Value string `gorm:"column:value"`
}

// TableName keeps the table name stable regardless of gorm's pluralization.
func (Entry) TableName() string { return "kv_entries" }

type sqliteStore struct {
	db     *gorm.DB
	logger *log.Logger
}

// OpenSQLite opens (creating if needed) a sqlite-backed store at path.
// The schema is managed via AutoMigrate; there is a single table.
func OpenSQLite(path string, logger *log.Logger) (KV, error) {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open store %s: %w", path, err)
	}
	if err := db.AutoMigrate(&Entry{}); err != nil {
		return nil, fmt.Errorf("migrate store: %w", err)
	}
	logger.Printf("store: opened %s", path)
	return &sqliteStore{db: db, logger: logger}, nil
}

func (s *sqliteStore) Get(key string) (string, bool, error) {
	var e Entry
	if err := s.db.First(&e, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		s.logger.Printf("store: get key=%s error=%v", key, err)
		return "", false, err
	}
	return e.Value, true, nil
}

func (s *sqliteStore) Set(key, value string) error {
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&Entry{Key: key, Value: value}).Error
	if err != nil {
		s.logger.Printf("store: set key=%s error=%v", key, err)
	}
	return err
}

func (s *sqliteStore) Delete(key string) error {
	if err := s.db.Delete(&Entry{}, "key = ?", key).Error; err != nil {
		s.logger.Printf("store: delete key=%s error=%v", key, err)
		return err
	}
	return nil
}

func (s *sqliteStore) Ping() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func (s *sqliteStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
