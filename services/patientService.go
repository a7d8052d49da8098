package services

import (
	"DentalDesk/models"
	"DentalDesk/repositories"
	"DentalDesk/utils"
	"context"
)

type PatientService struct {
	repository *repositories.PatientRepository
}

func NewPatientService(repository *repositories.PatientRepository) *PatientService {
	return &PatientService{repository: repository}
}

func (s *PatientService) Create(ctx context.Context, patient *models.Patient) error {
	if err := utils.ValidateNewPatient(*patient); err != nil {
		return err
	}
	return s.repository.Create(ctx, patient)
}

func (s *PatientService) GetByID(ctx context.Context, id string) (*models.Patient, error) {
	return s.repository.GetByID(ctx, id)
}

func (s *PatientService) GetAll(ctx context.Context, limit, offset int) ([]models.Patient, error) {
	return s.repository.GetAll(ctx, limit, offset)
}

func (s *PatientService) Search(ctx context.Context, term string, limit int) ([]models.Patient, error) {
	return s.repository.Search(ctx, term, limit)
}

func (s *PatientService) Update(ctx context.Context, id string, update repositories.PatientUpdate) (*models.Patient, error) {
	return s.repository.Update(ctx, id, update)
}

func (s *PatientService) Delete(ctx context.Context, id string) error {
	return s.repository.Delete(ctx, id)
}
