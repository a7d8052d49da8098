package repositories

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"DentalDesk/database"
	"DentalDesk/models"

	"github.com/google/uuid"
)

func newTestStore(t *testing.T) *database.Store {
	t.Helper()
	store, err := database.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func strptr(s string) *string {
	return &s
}

// seedDoctor inserts a dentist account so appointment rows satisfy the
// doctor foreign key.
func seedDoctor(t *testing.T, store *database.Store) *models.User {
	t.Helper()
	user := &models.User{
		ID:           uuid.New().String(),
		Username:     "drsmith-" + uuid.New().String()[:8],
		Email:        uuid.New().String()[:8] + "@example.com",
		PasswordHash: "x",
		Role:         models.RoleDentist,
		FirstName:    "Eleni",
		LastName:     "Georgiou",
		IsActive:     true,
	}
	if err := NewUserRepository(store).CreateUser(context.Background(), user); err != nil {
		t.Fatalf("seeding doctor: %v", err)
	}
	return user
}

func seedPatient(t *testing.T, store *database.Store, first, last, phone string) *models.Patient {
	t.Helper()
	patient := &models.Patient{
		FirstName:   first,
		LastName:    last,
		DateOfBirth: "1985-06-20",
		Phone:       phone,
	}
	if err := NewPatientRepository(store).Create(context.Background(), patient); err != nil {
		t.Fatalf("seeding patient: %v", err)
	}
	return patient
}

func seedAppointment(t *testing.T, store *database.Store, patientID, doctorID string, start time.Time) *models.Appointment {
	t.Helper()
	appointment := &models.Appointment{
		PatientID: patientID,
		StartTime: start,
		EndTime:   start.Add(30 * time.Minute),
		Duration:  30,
		Type:      models.TypeRegularCheckup,
		DoctorID:  doctorID,
	}
	if err := NewAppointmentRepository(store).Create(context.Background(), appointment, doctorID); err != nil {
		t.Fatalf("seeding appointment: %v", err)
	}
	return appointment
}
