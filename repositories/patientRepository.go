package repositories

import (
	"DentalDesk/database"
	"DentalDesk/models"
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// ErrNotFound is returned by id-based operations when the row is absent.
var ErrNotFound = errors.New("record not found")

const defaultSearchLimit = 50

type PatientRepository struct {
	store *database.Store
}

func NewPatientRepository(store *database.Store) *PatientRepository {
	return &PatientRepository{store: store}
}

func (r *PatientRepository) Create(ctx context.Context, patient *models.Patient) error {
	db, err := r.store.DB()
	if err != nil {
		return err
	}

	if patient.ID == "" {
		patient.ID = uuid.New().String()
	}
	if patient.Address.Country == nil {
		country := "Greece"
		patient.Address.Country = &country
	}

	if err := db.WithContext(ctx).Create(patient).Error; err != nil {
		return errors.Wrap(err, "failed to create patient")
	}
	return nil
}

// GetByID returns the patient, or nil when no row matches.
func (r *PatientRepository) GetByID(ctx context.Context, id string) (*models.Patient, error) {
	db, err := r.store.DB()
	if err != nil {
		return nil, err
	}

	var patient models.Patient
	err = db.WithContext(ctx).First(&patient, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "failed to get patient")
	}
	return &patient, nil
}

// GetAll lists patients ordered by last name then first name. A limit of
// zero returns everything.
func (r *PatientRepository) GetAll(ctx context.Context, limit, offset int) ([]models.Patient, error) {
	db, err := r.store.DB()
	if err != nil {
		return nil, err
	}

	query := db.WithContext(ctx).Order("last_name, first_name")
	if limit > 0 {
		query = query.Limit(limit)
		if offset > 0 {
			query = query.Offset(offset)
		}
	}

	var patients []models.Patient
	if err := query.Find(&patients).Error; err != nil {
		return nil, errors.Wrap(err, "failed to get all patients")
	}
	return patients, nil
}

// Search performs a case-insensitive substring match over name, phone,
// email, and AMKA.
func (r *PatientRepository) Search(ctx context.Context, term string, limit int) ([]models.Patient, error) {
	db, err := r.store.DB()
	if err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = defaultSearchLimit
	}
	pattern := "%" + term + "%"

	var patients []models.Patient
	err = db.WithContext(ctx).
		Where("first_name LIKE ? OR last_name LIKE ? OR phone LIKE ? OR email LIKE ? OR amka LIKE ?",
			pattern, pattern, pattern, pattern, pattern).
		Order("last_name, first_name").
		Limit(limit).
		Find(&patients).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to search patients")
	}
	return patients, nil
}

// AddressUpdate carries the address fields to change.
type AddressUpdate struct {
	Street     *string `json:"street"`
	City       *string `json:"city"`
	PostalCode *string `json:"postal_code"`
	Country    *string `json:"country"`
}

// EmergencyContactUpdate carries the emergency-contact fields to change.
type EmergencyContactUpdate struct {
	Name         *string `json:"name"`
	Relationship *string `json:"relationship"`
	Phone        *string `json:"phone"`
}

// PatientUpdate is a sparse update: only non-nil fields are written.
type PatientUpdate struct {
	FirstName        *string                 `json:"first_name"`
	LastName         *string                 `json:"last_name"`
	DateOfBirth      *string                 `json:"date_of_birth"`
	Gender           *string                 `json:"gender"`
	AMKA             *string                 `json:"amka"`
	Phone            *string                 `json:"phone"`
	Email            *string                 `json:"email"`
	Address          *AddressUpdate          `json:"address"`
	EmergencyContact *EmergencyContactUpdate `json:"emergency_contact"`
	Occupation       *string                 `json:"occupation"`
}

// assignments maps the present fields to column assignments.
func (u PatientUpdate) assignments() map[string]interface{} {
	m := map[string]interface{}{}
	set := func(column string, v *string) {
		if v != nil {
			m[column] = *v
		}
	}

	set("first_name", u.FirstName)
	set("last_name", u.LastName)
	set("date_of_birth", u.DateOfBirth)
	set("gender", u.Gender)
	set("amka", u.AMKA)
	set("phone", u.Phone)
	set("email", u.Email)
	set("occupation", u.Occupation)

	if u.Address != nil {
		set("address_street", u.Address.Street)
		set("address_city", u.Address.City)
		set("address_postal_code", u.Address.PostalCode)
		set("address_country", u.Address.Country)
	}
	if u.EmergencyContact != nil {
		set("emergency_contact_name", u.EmergencyContact.Name)
		set("emergency_contact_relationship", u.EmergencyContact.Relationship)
		set("emergency_contact_phone", u.EmergencyContact.Phone)
	}
	return m
}

// Update writes only the fields present in the partial input. An empty
// partial returns the current row without touching the database.
func (r *PatientRepository) Update(ctx context.Context, id string, update PatientUpdate) (*models.Patient, error) {
	db, err := r.store.DB()
	if err != nil {
		return nil, err
	}

	assignments := update.assignments()
	if len(assignments) == 0 {
		patient, err := r.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if patient == nil {
			return nil, ErrNotFound
		}
		return patient, nil
	}

	assignments["updated_at"] = time.Now()
	err = db.WithContext(ctx).
		Model(&models.Patient{}).
		Where("id = ?", id).
		Updates(assignments).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to update patient")
	}

	patient, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, ErrNotFound
	}
	return patient, nil
}

// Delete removes the patient row; associated appointments are removed by
// the foreign-key cascade.
func (r *PatientRepository) Delete(ctx context.Context, id string) error {
	db, err := r.store.DB()
	if err != nil {
		return err
	}
	if err := db.WithContext(ctx).Delete(&models.Patient{}, "id = ?", id).Error; err != nil {
		return errors.Wrap(err, "failed to delete patient")
	}
	return nil
}
