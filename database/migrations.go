package database

import (
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// migration is a versioned, one-way schema change applied in order exactly
// once and recorded in schema_migrations.
type migration struct {
	version int
	up      func(tx *gorm.DB) error
}

var migrations = []migration{
	{
		version: 1,
		up: func(tx *gorm.DB) error {
			statements := []string{
				`CREATE TABLE IF NOT EXISTS users (
					id TEXT PRIMARY KEY,
					username TEXT UNIQUE NOT NULL,
					email TEXT UNIQUE NOT NULL,
					password_hash TEXT NOT NULL,
					role TEXT NOT NULL CHECK(role IN ('admin', 'dentist', 'assistant', 'receptionist')),
					first_name TEXT NOT NULL,
					last_name TEXT NOT NULL,
					phone TEXT,
					is_active INTEGER DEFAULT 1,
					last_login DATETIME,
					created_at DATETIME NOT NULL,
					updated_at DATETIME NOT NULL
				)`,
				`CREATE TABLE IF NOT EXISTS patients (
					id TEXT PRIMARY KEY,
					first_name TEXT NOT NULL,
					last_name TEXT NOT NULL,
					date_of_birth TEXT NOT NULL,
					gender TEXT CHECK(gender IN ('male', 'female', 'other')),
					amka TEXT,
					phone TEXT NOT NULL,
					email TEXT,
					address_street TEXT,
					address_city TEXT,
					address_postal_code TEXT,
					address_country TEXT DEFAULT 'Greece',
					emergency_contact_name TEXT,
					emergency_contact_relationship TEXT,
					emergency_contact_phone TEXT,
					occupation TEXT,
					created_at DATETIME NOT NULL,
					updated_at DATETIME NOT NULL
				)`,
				`CREATE INDEX IF NOT EXISTS idx_patients_phone ON patients(phone)`,
				`CREATE INDEX IF NOT EXISTS idx_patients_email ON patients(email)`,
				`CREATE INDEX IF NOT EXISTS idx_patients_amka ON patients(amka)`,
				`CREATE INDEX IF NOT EXISTS idx_patients_name ON patients(last_name, first_name)`,
			}
			for _, stmt := range statements {
				if err := tx.Exec(stmt).Error; err != nil {
					return err
				}
			}
			return nil
		},
	},
	{
		version: 2,
		up: func(tx *gorm.DB) error {
			statements := []string{
				`CREATE TABLE IF NOT EXISTS appointments (
					id TEXT PRIMARY KEY,
					patient_id TEXT NOT NULL,
					date TEXT NOT NULL,
					start_time DATETIME NOT NULL,
					end_time DATETIME NOT NULL,
					duration INTEGER NOT NULL,
					type TEXT NOT NULL CHECK(type IN ('initial_consultation', 'regular_checkup', 'cleaning', 'treatment', 'follow_up', 'emergency', 'consultation')),
					status TEXT NOT NULL DEFAULT 'scheduled' CHECK(status IN ('scheduled', 'confirmed', 'completed', 'cancelled', 'no_show')),
					doctor_id TEXT NOT NULL,
					chair_id TEXT,
					notes TEXT,
					reminder_sent INTEGER DEFAULT 0,
					reminder_sent_at DATETIME,
					cancelled_at DATETIME,
					cancellation_reason TEXT,
					check_in_time DATETIME,
					check_out_time DATETIME,
					created_at DATETIME NOT NULL,
					created_by TEXT NOT NULL,
					updated_at DATETIME NOT NULL,
					FOREIGN KEY (patient_id) REFERENCES patients(id) ON DELETE CASCADE,
					FOREIGN KEY (doctor_id) REFERENCES users(id)
				)`,
				`CREATE INDEX IF NOT EXISTS idx_appointments_patient ON appointments(patient_id)`,
				`CREATE INDEX IF NOT EXISTS idx_appointments_doctor ON appointments(doctor_id)`,
				`CREATE INDEX IF NOT EXISTS idx_appointments_date ON appointments(date)`,
				`CREATE INDEX IF NOT EXISTS idx_appointments_status ON appointments(status)`,
			}
			for _, stmt := range statements {
				if err := tx.Exec(stmt).Error; err != nil {
					return err
				}
			}
			return nil
		},
	},
}

// runMigrations applies every migration above the highest recorded version,
// each in its own transaction.
func runMigrations(db *gorm.DB) error {
	err := db.Exec(`CREATE TABLE IF NOT EXISTS schema_migrations (
		version INTEGER PRIMARY KEY,
		applied_at DATETIME NOT NULL
	)`).Error
	if err != nil {
		return errors.Wrap(err, "failed to create schema_migrations table")
	}

	var current int
	err = db.Raw("SELECT COALESCE(MAX(version), 0) FROM schema_migrations").Scan(&current).Error
	if err != nil {
		return errors.Wrap(err, "failed to read current schema version")
	}

	for _, m := range migrations {
		if m.version <= current {
			continue
		}
		err := db.Transaction(func(tx *gorm.DB) error {
			if err := m.up(tx); err != nil {
				return err
			}
			return tx.Exec(
				"INSERT INTO schema_migrations (version, applied_at) VALUES (?, ?)",
				m.version, time.Now().UTC(),
			).Error
		})
		if err != nil {
			return errors.Wrapf(err, "migration %d failed", m.version)
		}
		log.Info().Int("version", m.version).Msg("migration applied")
	}
	return nil
}
