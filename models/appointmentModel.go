package models

import (
	"time"
)

// AppointmentType is the closed set of visit types.
type AppointmentType string

const (
	TypeInitialConsultation AppointmentType = "initial_consultation"
	TypeRegularCheckup      AppointmentType = "regular_checkup"
	TypeCleaning            AppointmentType = "cleaning"
	TypeTreatment           AppointmentType = "treatment"
	TypeFollowUp            AppointmentType = "follow_up"
	TypeEmergency           AppointmentType = "emergency"
	TypeConsultation        AppointmentType = "consultation"
)

// Valid reports whether the type is one of the known visit types.
func (t AppointmentType) Valid() bool {
	switch t {
	case TypeInitialConsultation, TypeRegularCheckup, TypeCleaning,
		TypeTreatment, TypeFollowUp, TypeEmergency, TypeConsultation:
		return true
	}
	return false
}

// AppointmentStatus is the appointment lifecycle state.
type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "scheduled"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusNoShow    AppointmentStatus = "no_show"
)

// Valid reports whether the status is one of the known states.
func (s AppointmentStatus) Valid() bool {
	switch s {
	case StatusScheduled, StatusConfirmed, StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	}
	return false
}

// Terminal reports whether the status ends the lifecycle.
func (s AppointmentStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled || s == StatusNoShow
}

// ValidStatusTransition encodes the conventional lifecycle:
// scheduled -> confirmed -> completed, with cancelled and no_show reachable
// from any non-terminal state. The generic update path does not consult it;
// callers that want strict lifecycle enforcement can.
func ValidStatusTransition(from, to AppointmentStatus) bool {
	if !from.Valid() || !to.Valid() {
		return false
	}
	if from.Terminal() {
		return false
	}
	switch to {
	case StatusCancelled, StatusNoShow:
		return true
	case StatusConfirmed:
		return from == StatusScheduled
	case StatusCompleted:
		return from == StatusConfirmed
	}
	return false
}

// Appointment model
type Appointment struct {
	ID                 string            `gorm:"primaryKey;column:id" json:"id"`
	PatientID          string            `gorm:"column:patient_id;not null;index" json:"patient_id"`
	Date               string            `gorm:"column:date;not null;index" json:"date"`
	StartTime          time.Time         `gorm:"column:start_time;not null" json:"start_time"`
	EndTime            time.Time         `gorm:"column:end_time;not null" json:"end_time"`
	Duration           int               `gorm:"column:duration;not null" json:"duration"`
	Type               AppointmentType   `gorm:"column:type;not null" json:"type"`
	Status             AppointmentStatus `gorm:"column:status;not null;default:scheduled;index" json:"status"`
	DoctorID           string            `gorm:"column:doctor_id;not null;index" json:"doctor_id"`
	ChairID            *string           `gorm:"column:chair_id" json:"chair_id,omitempty"`
	Notes              *string           `gorm:"column:notes" json:"notes,omitempty"`
	ReminderSent       bool              `gorm:"column:reminder_sent;default:false" json:"reminder_sent"`
	ReminderSentAt     *time.Time        `gorm:"column:reminder_sent_at" json:"reminder_sent_at,omitempty"`
	CancelledAt        *time.Time        `gorm:"column:cancelled_at" json:"cancelled_at,omitempty"`
	CancellationReason *string           `gorm:"column:cancellation_reason" json:"cancellation_reason,omitempty"`
	CheckInTime        *time.Time        `gorm:"column:check_in_time" json:"check_in_time,omitempty"`
	CheckOutTime       *time.Time        `gorm:"column:check_out_time" json:"check_out_time,omitempty"`
	CreatedAt          time.Time         `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	CreatedBy          string            `gorm:"column:created_by;not null" json:"created_by"`
	UpdatedAt          time.Time         `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// DateOf formats a timestamp as the calendar-date column value (YYYY-MM-DD).
func DateOf(t time.Time) string {
	return t.Format("2006-01-02")
}
