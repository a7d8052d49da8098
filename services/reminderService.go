package services

import (
	"DentalDesk/models"
	"DentalDesk/repositories"
	"DentalDesk/utils"
	"context"

	"github.com/pkg/errors"
)

// ReminderService delivers appointment reminders by mail and records the
// reminder flag on the appointment row.
type ReminderService struct {
	appointments *repositories.AppointmentRepository
	patients     *repositories.PatientRepository
	mailer       *utils.Mailer
}

func NewReminderService(appointments *repositories.AppointmentRepository, patients *repositories.PatientRepository, mailer *utils.Mailer) *ReminderService {
	return &ReminderService{appointments: appointments, patients: patients, mailer: mailer}
}

// SendReminder mails the patient about the appointment and marks the
// reminder as sent. Patients without an email address still get the flag
// set, so the appointment is not picked up again.
func (s *ReminderService) SendReminder(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	appointment, err := s.appointments.GetByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, repositories.ErrNotFound
	}

	patient, err := s.patients.GetByID(ctx, appointment.PatientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, errors.New("appointment has no patient")
	}

	if patient.Email != nil && s.mailer != nil {
		err := s.mailer.SendAppointmentReminder(
			*patient.Email,
			patient.FirstName+" "+patient.LastName,
			appointment.Date,
			appointment.StartTime.Format("15:04"),
		)
		if err != nil {
			return nil, err
		}
	}

	return s.appointments.MarkReminderSent(ctx, appointmentID)
}
