package database

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ErrUnavailable is returned by every Store operation when the embedded
// engine could not be opened. Callers treat it as a degraded-mode signal
// rather than a fatal condition.
var ErrUnavailable = errors.New("database unavailable")

// Store owns the embedded database file. It is created by Open and handed to
// each repository at construction; there is no package-level connection.
type Store struct {
	db        *gorm.DB
	path      string
	available bool
}

// Open opens (creating if absent) the database file, enables foreign-key
// enforcement, and applies pending migrations. On failure the returned Store
// is still usable: it reports Available() == false and every operation fails
// with ErrUnavailable, so the rest of the application can keep running.
func Open(path string) (*Store, error) {
	s := &Store{path: path}

	logMode := logger.Silent
	if os.Getenv("ENV") == "development" {
		logMode = logger.Info
	}

	db, err := gorm.Open(sqlite.Open(path+"?_fk=1"), &gorm.Config{
		PrepareStmt: true,
		Logger:      logger.Default.LogMode(logMode),
	})
	if err != nil {
		return s, errors.Wrap(err, "failed to open database file")
	}

	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		return s, errors.Wrap(err, "failed to enable foreign keys")
	}

	if err := runMigrations(db); err != nil {
		return s, err
	}

	s.db = db
	s.available = true
	log.Info().Str("path", path).Msg("database initialized")
	return s, nil
}

// Available reports whether the store was initialized successfully.
func (s *Store) Available() bool {
	return s.available
}

// Path returns the on-disk location of the database file.
func (s *Store) Path() string {
	return s.path
}

// DB returns the guarded gorm handle.
func (s *Store) DB() (*gorm.DB, error) {
	if !s.available || s.db == nil {
		return nil, ErrUnavailable
	}
	return s.db, nil
}

// Transaction runs body inside a single transaction; any error rolls the
// transaction back and is returned to the caller.
func (s *Store) Transaction(body func(tx *gorm.DB) error) error {
	db, err := s.DB()
	if err != nil {
		return err
	}
	return db.Transaction(body)
}

// Close releases the underlying connection.
func (s *Store) Close() error {
	if !s.available || s.db == nil {
		return nil
	}
	sqlDB, err := s.db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get sql.DB from GORM")
	}
	s.available = false
	s.db = nil
	return sqlDB.Close()
}

// Backup copies the database file to a timestamped sibling path and returns
// that path.
func (s *Store) Backup() (string, error) {
	if !s.available {
		return "", ErrUnavailable
	}
	backupPath := fmt.Sprintf("%s.backup.%d", s.path, time.Now().UnixMilli())
	if err := copyFile(s.path, backupPath); err != nil {
		return "", errors.Wrap(err, "backup failed")
	}
	log.Info().Str("path", backupPath).Msg("database backed up")
	return backupPath, nil
}

// Restore closes the live connection, overwrites the database file with the
// backup at path, and reinitializes the store in place.
func (s *Store) Restore(backupPath string) error {
	if _, err := os.Stat(backupPath); err != nil {
		return errors.Wrap(err, "backup file not found")
	}

	if err := s.Close(); err != nil {
		return err
	}

	if err := copyFile(backupPath, s.path); err != nil {
		return errors.Wrap(err, "restore failed")
	}

	reopened, err := Open(s.path)
	if err != nil {
		return err
	}
	s.db = reopened.db
	s.available = reopened.available
	log.Info().Str("path", backupPath).Msg("database restored")
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Sync()
}
