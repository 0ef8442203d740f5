package db

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/javiermh/jornada/internal/models"
)

// Store is the durable record store for sessions, breaks, profiles and
// audit entries. It is constructed explicitly and injected into the
// session manager, so tests can swap in an in-memory database.
type Store struct {
	db *gorm.DB
}

// Open connects to the sqlite database at path and runs migrations.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create jornada directory: %w", err)
	}

	gdb, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent), // Quiet by default
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return NewStore(gdb)
}

// NewStore wraps an already-open gorm connection and runs migrations.
// Tests use this with sqlite ":memory:".
func NewStore(gdb *gorm.DB) (*Store, error) {
	store := &Store{db: gdb}
	if err := store.migrate(); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return store, nil
}

// DefaultPath returns the path to the sqlite database file,
// honouring the JORNADA_DB override.
func DefaultPath() (string, error) {
	if override := os.Getenv("JORNADA_DB"); override != "" {
		return override, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".jornada", "jornada.db"), nil
}

// migrate creates/updates the database schema
func (s *Store) migrate() error {
	return s.db.AutoMigrate(
		&models.Profile{},
		&models.WorkSession{},
		&models.Break{},
		&models.AuditLog{},
	)
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
