package services

import (
	"DentalDesk/models"
	"DentalDesk/repositories"
	"DentalDesk/utils"
	"context"
	"time"
)

type AppointmentService struct {
	repository *repositories.AppointmentRepository
}

func NewAppointmentService(repository *repositories.AppointmentRepository) *AppointmentService {
	return &AppointmentService{repository: repository}
}

func (s *AppointmentService) Create(ctx context.Context, appointment *models.Appointment, createdBy string) error {
	if err := utils.ValidateNewAppointment(*appointment); err != nil {
		return err
	}
	return s.repository.Create(ctx, appointment, createdBy)
}

func (s *AppointmentService) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	return s.repository.GetByID(ctx, id)
}

func (s *AppointmentService) GetAll(ctx context.Context, limit, offset int) ([]models.Appointment, error) {
	return s.repository.GetAll(ctx, limit, offset)
}

func (s *AppointmentService) GetByDateRange(ctx context.Context, start, end time.Time) ([]models.Appointment, error) {
	return s.repository.GetByDateRange(ctx, start, end)
}

func (s *AppointmentService) GetByDate(ctx context.Context, date time.Time) ([]models.Appointment, error) {
	return s.repository.GetByDate(ctx, date)
}

func (s *AppointmentService) GetByPatient(ctx context.Context, patientID string) ([]models.Appointment, error) {
	return s.repository.GetByPatient(ctx, patientID)
}

func (s *AppointmentService) GetByDoctor(ctx context.Context, doctorID string, start, end *time.Time) ([]models.Appointment, error) {
	return s.repository.GetByDoctor(ctx, doctorID, start, end)
}

func (s *AppointmentService) Update(ctx context.Context, id string, update repositories.AppointmentUpdate) (*models.Appointment, error) {
	return s.repository.Update(ctx, id, update)
}

func (s *AppointmentService) Delete(ctx context.Context, id string) error {
	return s.repository.Delete(ctx, id)
}

func (s *AppointmentService) CheckIn(ctx context.Context, id string) (*models.Appointment, error) {
	return s.repository.CheckIn(ctx, id)
}

func (s *AppointmentService) CheckOut(ctx context.Context, id string) (*models.Appointment, error) {
	return s.repository.CheckOut(ctx, id)
}

func (s *AppointmentService) Cancel(ctx context.Context, id string, reason *string) (*models.Appointment, error) {
	return s.repository.Cancel(ctx, id, reason)
}
