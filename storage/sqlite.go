package storage

import (
	"errors"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// kvRecord is the single table backing the SQLite store: one row per
// namespace, whole payload replaced on every write. Keeping the value
// opaque preserves the read-modify-write list semantics of the file store.
type kvRecord struct {
	Namespace string `gorm:"primaryKey"`
	Payload   []byte
}

func (kvRecord) TableName() string {
	return "local_store"
}

// SQLiteStore is the embedded-database backend for the key-value gateway.
type SQLiteStore struct {
	db *gorm.DB
}

// NewSQLiteStore opens (or creates) the database file and migrates the
// store table.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&kvRecord{}); err != nil {
		return nil, err
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Get(namespace string) ([]byte, bool, error) {
	var rec kvRecord
	if err := s.db.First(&rec, "namespace = ?", namespace).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return rec.Payload, true, nil
}

func (s *SQLiteStore) Put(namespace string, payload []byte) error {
	rec := kvRecord{Namespace: namespace, Payload: payload}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "namespace"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload"}),
	}).Create(&rec).Error
}
