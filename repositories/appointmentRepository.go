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

type AppointmentRepository struct {
	store *database.Store
}

func NewAppointmentRepository(store *database.Store) *AppointmentRepository {
	return &AppointmentRepository{store: store}
}

// Create inserts a new appointment with a generated id. Status defaults to
// scheduled and the reminder flag starts cleared. No overlap check is made
// against other appointments for the same doctor or chair.
func (r *AppointmentRepository) Create(ctx context.Context, appointment *models.Appointment, createdBy string) error {
	db, err := r.store.DB()
	if err != nil {
		return err
	}

	if appointment.ID == "" {
		appointment.ID = uuid.New().String()
	}
	if appointment.Status == "" {
		appointment.Status = models.StatusScheduled
	}
	if appointment.Date == "" {
		appointment.Date = models.DateOf(appointment.StartTime)
	}
	appointment.ReminderSent = false
	appointment.ReminderSentAt = nil
	appointment.CreatedBy = createdBy

	if !appointment.Status.Valid() {
		return errors.New("invalid status value")
	}
	if !appointment.Type.Valid() {
		return errors.New("invalid appointment type")
	}

	if err := db.WithContext(ctx).Create(appointment).Error; err != nil {
		return errors.Wrap(err, "failed to create appointment")
	}
	return nil
}

// GetByID returns the appointment, or nil when no row matches.
func (r *AppointmentRepository) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	db, err := r.store.DB()
	if err != nil {
		return nil, err
	}

	var appointment models.Appointment
	err = db.WithContext(ctx).First(&appointment, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "failed to get appointment")
	}
	return &appointment, nil
}

// GetAll lists appointments ordered by date then start time. A limit of
// zero returns everything.
func (r *AppointmentRepository) GetAll(ctx context.Context, limit, offset int) ([]models.Appointment, error) {
	db, err := r.store.DB()
	if err != nil {
		return nil, err
	}

	query := db.WithContext(ctx).Order("date, start_time")
	if limit > 0 {
		query = query.Limit(limit)
		if offset > 0 {
			query = query.Offset(offset)
		}
	}

	var appointments []models.Appointment
	if err := query.Find(&appointments).Error; err != nil {
		return nil, errors.Wrap(err, "failed to get all appointments")
	}
	return appointments, nil
}

// GetByDateRange returns appointments whose calendar date falls within
// [start, end] inclusive.
func (r *AppointmentRepository) GetByDateRange(ctx context.Context, start, end time.Time) ([]models.Appointment, error) {
	db, err := r.store.DB()
	if err != nil {
		return nil, err
	}

	var appointments []models.Appointment
	err = db.WithContext(ctx).
		Where("date >= ? AND date <= ?", models.DateOf(start), models.DateOf(end)).
		Order("date, start_time").
		Find(&appointments).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to get appointments by date range")
	}
	return appointments, nil
}

// GetByDate returns the appointments scheduled on the given calendar date.
func (r *AppointmentRepository) GetByDate(ctx context.Context, date time.Time) ([]models.Appointment, error) {
	db, err := r.store.DB()
	if err != nil {
		return nil, err
	}

	var appointments []models.Appointment
	err = db.WithContext(ctx).
		Where("date = ?", models.DateOf(date)).
		Order("start_time").
		Find(&appointments).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to get appointments by date")
	}
	return appointments, nil
}

// GetByPatient returns the patient's appointments, most recent first.
func (r *AppointmentRepository) GetByPatient(ctx context.Context, patientID string) ([]models.Appointment, error) {
	db, err := r.store.DB()
	if err != nil {
		return nil, err
	}

	var appointments []models.Appointment
	err = db.WithContext(ctx).
		Where("patient_id = ?", patientID).
		Order("date DESC, start_time DESC").
		Find(&appointments).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to get appointments by patient")
	}
	return appointments, nil
}

// GetByDoctor returns the doctor's appointments, optionally bounded by a
// date range when both start and end are set.
func (r *AppointmentRepository) GetByDoctor(ctx context.Context, doctorID string, start, end *time.Time) ([]models.Appointment, error) {
	db, err := r.store.DB()
	if err != nil {
		return nil, err
	}

	query := db.WithContext(ctx).Where("doctor_id = ?", doctorID)
	if start != nil && end != nil {
		query = query.Where("date >= ? AND date <= ?", models.DateOf(*start), models.DateOf(*end))
	}

	var appointments []models.Appointment
	err = query.Order("date, start_time").Find(&appointments).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to get appointments by doctor")
	}
	return appointments, nil
}

// AppointmentUpdate is a sparse update: only non-nil fields are written.
type AppointmentUpdate struct {
	PatientID          *string                   `json:"patient_id"`
	Date               *string                   `json:"date"`
	StartTime          *time.Time                `json:"start_time"`
	EndTime            *time.Time                `json:"end_time"`
	Duration           *int                      `json:"duration"`
	Type               *models.AppointmentType   `json:"type"`
	Status             *models.AppointmentStatus `json:"status"`
	DoctorID           *string                   `json:"doctor_id"`
	ChairID            *string                   `json:"chair_id"`
	Notes              *string                   `json:"notes"`
	CheckInTime        *time.Time                `json:"check_in_time"`
	CheckOutTime       *time.Time                `json:"check_out_time"`
	CancelledAt        *time.Time                `json:"cancelled_at"`
	CancellationReason *string                   `json:"cancellation_reason"`
}

// assignments maps the present fields to column assignments.
func (u AppointmentUpdate) assignments() map[string]interface{} {
	m := map[string]interface{}{}
	if u.PatientID != nil {
		m["patient_id"] = *u.PatientID
	}
	if u.Date != nil {
		m["date"] = *u.Date
	}
	if u.StartTime != nil {
		m["start_time"] = *u.StartTime
	}
	if u.EndTime != nil {
		m["end_time"] = *u.EndTime
	}
	if u.Duration != nil {
		m["duration"] = *u.Duration
	}
	if u.Type != nil {
		m["type"] = *u.Type
	}
	if u.Status != nil {
		m["status"] = *u.Status
	}
	if u.DoctorID != nil {
		m["doctor_id"] = *u.DoctorID
	}
	if u.ChairID != nil {
		m["chair_id"] = *u.ChairID
	}
	if u.Notes != nil {
		m["notes"] = *u.Notes
	}
	if u.CheckInTime != nil {
		m["check_in_time"] = *u.CheckInTime
	}
	if u.CheckOutTime != nil {
		m["check_out_time"] = *u.CheckOutTime
	}
	if u.CancelledAt != nil {
		m["cancelled_at"] = *u.CancelledAt
	}
	if u.CancellationReason != nil {
		m["cancellation_reason"] = *u.CancellationReason
	}
	return m
}

// Update writes only the fields present in the partial input. An empty
// partial returns the current row without touching the database. The status
// lifecycle is deliberately not enforced here; the dedicated helpers below
// apply the conventional transitions.
func (r *AppointmentRepository) Update(ctx context.Context, id string, update AppointmentUpdate) (*models.Appointment, error) {
	db, err := r.store.DB()
	if err != nil {
		return nil, err
	}

	if update.Status != nil && !update.Status.Valid() {
		return nil, errors.New("invalid status value")
	}
	if update.Type != nil && !update.Type.Valid() {
		return nil, errors.New("invalid appointment type")
	}

	assignments := update.assignments()
	if len(assignments) == 0 {
		appointment, err := r.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if appointment == nil {
			return nil, ErrNotFound
		}
		return appointment, nil
	}

	assignments["updated_at"] = time.Now()
	err = db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ?", id).
		Updates(assignments).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to update appointment")
	}

	appointment, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, ErrNotFound
	}
	return appointment, nil
}

// Delete removes the appointment row unconditionally.
func (r *AppointmentRepository) Delete(ctx context.Context, id string) error {
	db, err := r.store.DB()
	if err != nil {
		return err
	}
	if err := db.WithContext(ctx).Delete(&models.Appointment{}, "id = ?", id).Error; err != nil {
		return errors.Wrap(err, "failed to delete appointment")
	}
	return nil
}

// CheckIn records the arrival time and moves the appointment to confirmed.
func (r *AppointmentRepository) CheckIn(ctx context.Context, id string) (*models.Appointment, error) {
	now := time.Now()
	status := models.StatusConfirmed
	return r.Update(ctx, id, AppointmentUpdate{
		CheckInTime: &now,
		Status:      &status,
	})
}

// CheckOut records the departure time and moves the appointment to completed.
func (r *AppointmentRepository) CheckOut(ctx context.Context, id string) (*models.Appointment, error) {
	now := time.Now()
	status := models.StatusCompleted
	return r.Update(ctx, id, AppointmentUpdate{
		CheckOutTime: &now,
		Status:       &status,
	})
}

// Cancel marks the appointment cancelled. The reason column always takes
// the given value, so a reasonless cancel clears any stored reason.
// Cancelling an already-cancelled appointment succeeds again and refreshes
// the cancellation timestamp.
func (r *AppointmentRepository) Cancel(ctx context.Context, id string, reason *string) (*models.Appointment, error) {
	db, err := r.store.DB()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	err = db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":              models.StatusCancelled,
			"cancelled_at":        now,
			"cancellation_reason": reason,
			"updated_at":          now,
		}).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to cancel appointment")
	}

	appointment, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, ErrNotFound
	}
	return appointment, nil
}

// MarkReminderSent sets the reminder flag and timestamp.
func (r *AppointmentRepository) MarkReminderSent(ctx context.Context, id string) (*models.Appointment, error) {
	db, err := r.store.DB()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	err = db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"reminder_sent":    true,
			"reminder_sent_at": now,
			"updated_at":       now,
		}).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to mark reminder sent")
	}

	appointment, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, ErrNotFound
	}
	return appointment, nil
}
