package repositories

import (
	"context"
	"testing"
	"time"

	"DentalDesk/models"
)

func TestPatientCreateAndGetByID(t *testing.T) {
	store := newTestStore(t)
	repo := NewPatientRepository(store)
	ctx := context.Background()

	patient := &models.Patient{
		FirstName:   "Maria",
		LastName:    "Papadopoulou",
		DateOfBirth: "1990-04-12",
		Gender:      strptr("female"),
		AMKA:        strptr("12049012345"),
		Phone:       "6941234567",
		Email:       strptr("maria@example.com"),
		Address: models.Address{
			Street: strptr("Ermou 12"),
			City:   strptr("Athens"),
		},
		EmergencyContact: models.EmergencyContact{
			Name:  strptr("Nikos Papadopoulos"),
			Phone: strptr("6947654321"),
		},
		Occupation: strptr("Architect"),
	}
	if err := repo.Create(ctx, patient); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if patient.ID == "" {
		t.Fatal("Create must assign an id")
	}

	got, err := repo.GetByID(ctx, patient.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got == nil {
		t.Fatal("GetByID returned nil for an existing patient")
	}
	if got.FirstName != "Maria" || got.LastName != "Papadopoulou" {
		t.Errorf("name = %s %s, want Maria Papadopoulou", got.FirstName, got.LastName)
	}
	if got.DateOfBirth != "1990-04-12" {
		t.Errorf("date_of_birth = %s, want 1990-04-12", got.DateOfBirth)
	}
	if got.AMKA == nil || *got.AMKA != "12049012345" {
		t.Errorf("amka = %v, want 12049012345", got.AMKA)
	}
	if got.Address.Street == nil || *got.Address.Street != "Ermou 12" {
		t.Errorf("street = %v, want Ermou 12", got.Address.Street)
	}
	if got.Address.Country == nil || *got.Address.Country != "Greece" {
		t.Errorf("country = %v, want default Greece", got.Address.Country)
	}
	if got.EmergencyContact.Name == nil || *got.EmergencyContact.Name != "Nikos Papadopoulos" {
		t.Errorf("emergency contact = %v, want Nikos Papadopoulos", got.EmergencyContact.Name)
	}
	if got.CreatedAt.IsZero() || got.UpdatedAt.IsZero() {
		t.Error("timestamps must be populated on create")
	}
}

func TestPatientGetByIDMissing(t *testing.T) {
	store := newTestStore(t)
	repo := NewPatientRepository(store)

	got, err := repo.GetByID(context.Background(), "no-such-id")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got != nil {
		t.Fatalf("GetByID = %+v, want nil for a missing patient", got)
	}
}

func TestPatientGetAllOrdering(t *testing.T) {
	store := newTestStore(t)
	repo := NewPatientRepository(store)
	ctx := context.Background()

	seedPatient(t, store, "Giorgos", "Vlachos", "6900000001")
	seedPatient(t, store, "Anna", "Alexiou", "6900000002")
	seedPatient(t, store, "Kostas", "Alexiou", "6900000003")

	patients, err := repo.GetAll(ctx, 0, 0)
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if len(patients) != 3 {
		t.Fatalf("len = %d, want 3", len(patients))
	}
	// Ordered by last name, then first name.
	if patients[0].FirstName != "Anna" || patients[1].FirstName != "Kostas" || patients[2].LastName != "Vlachos" {
		t.Errorf("unexpected order: %s, %s, %s",
			patients[0].FirstName, patients[1].FirstName, patients[2].FirstName)
	}

	page, err := repo.GetAll(ctx, 2, 1)
	if err != nil {
		t.Fatalf("GetAll paginated: %v", err)
	}
	if len(page) != 2 || page[0].FirstName != "Kostas" {
		t.Errorf("page = %+v, want [Kostas, Giorgos]", page)
	}
}

func TestPatientSearch(t *testing.T) {
	store := newTestStore(t)
	repo := NewPatientRepository(store)
	ctx := context.Background()

	seedPatient(t, store, "Maria", "Papadopoulou", "6941234567")
	seedPatient(t, store, "Nikos", "Katsaros", "6987654321")

	// Substring match on phone.
	byPhone, err := repo.Search(ctx, "412345", 0)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(byPhone) != 1 || byPhone[0].FirstName != "Maria" {
		t.Fatalf("phone search = %+v, want only Maria", byPhone)
	}

	// Case-insensitive match on name.
	byName, err := repo.Search(ctx, "katsar", 0)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(byName) != 1 || byName[0].FirstName != "Nikos" {
		t.Fatalf("name search = %+v, want only Nikos", byName)
	}

	none, err := repo.Search(ctx, "zzz", 0)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("search for zzz = %+v, want empty", none)
	}
}

func TestPatientUpdateSparse(t *testing.T) {
	store := newTestStore(t)
	repo := NewPatientRepository(store)
	ctx := context.Background()

	patient := seedPatient(t, store, "Maria", "Papadopoulou", "6941234567")

	updated, err := repo.Update(ctx, patient.ID, PatientUpdate{
		Phone: strptr("6900000000"),
		Address: &AddressUpdate{
			City: strptr("Thessaloniki"),
		},
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Phone != "6900000000" {
		t.Errorf("phone = %s, want 6900000000", updated.Phone)
	}
	if updated.Address.City == nil || *updated.Address.City != "Thessaloniki" {
		t.Errorf("city = %v, want Thessaloniki", updated.Address.City)
	}
	// Untouched fields survive.
	if updated.FirstName != "Maria" || updated.LastName != "Papadopoulou" {
		t.Errorf("name changed unexpectedly: %s %s", updated.FirstName, updated.LastName)
	}
}

func TestPatientUpdateEmptyPartial(t *testing.T) {
	store := newTestStore(t)
	repo := NewPatientRepository(store)
	ctx := context.Background()

	patient := seedPatient(t, store, "Maria", "Papadopoulou", "6941234567")
	before, _ := repo.GetByID(ctx, patient.ID)

	got, err := repo.Update(ctx, patient.ID, PatientUpdate{})
	if err != nil {
		t.Fatalf("Update with empty partial: %v", err)
	}
	if got.Phone != before.Phone || !got.UpdatedAt.Equal(before.UpdatedAt) {
		t.Errorf("empty partial must not modify the row: got %+v", got)
	}

	if _, err := repo.Update(ctx, "no-such-id", PatientUpdate{}); err != ErrNotFound {
		t.Errorf("Update missing id = %v, want ErrNotFound", err)
	}
}

func TestPatientDeleteCascadesAppointments(t *testing.T) {
	store := newTestStore(t)
	patients := NewPatientRepository(store)
	appointments := NewAppointmentRepository(store)
	ctx := context.Background()

	doctor := seedDoctor(t, store)
	patient := seedPatient(t, store, "Maria", "Papadopoulou", "6941234567")
	appointment := seedAppointment(t, store, patient.ID, doctor.ID, time.Now().Add(24*time.Hour))

	if err := patients.Delete(ctx, patient.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	gone, err := patients.GetByID(ctx, patient.ID)
	if err != nil || gone != nil {
		t.Fatalf("patient still present after delete: %+v, %v", gone, err)
	}

	orphan, err := appointments.GetByID(ctx, appointment.ID)
	if err != nil {
		t.Fatalf("GetByID appointment: %v", err)
	}
	if orphan != nil {
		t.Fatal("appointment must be removed by the foreign-key cascade")
	}
}
