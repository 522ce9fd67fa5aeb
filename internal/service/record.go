package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/kaifmomin2004/EHR-Project/internal/apperrors"
	"github.com/kaifmomin2004/EHR-Project/internal/authz"
	"github.com/kaifmomin2004/EHR-Project/internal/models"
	"github.com/kaifmomin2004/EHR-Project/internal/repository"
)

// RecordInput carries the caller-supplied fields of a medical record.
type RecordInput struct {
	PatientID      string   `json:"patient_id" binding:"required"`
	ChiefComplaint string   `json:"chief_complaint" binding:"required"`
	Diagnosis      string   `json:"diagnosis" binding:"required"`
	TreatmentPlan  string   `json:"treatment_plan" binding:"required"`
	Prescriptions  []string `json:"prescriptions"`
	Notes          string   `json:"notes"`
	FollowUpDate   string   `json:"follow_up_date"`
}

// RecordService exposes the guarded medical record operations. Records are
// immutable once created; the interface has no update or delete.
type RecordService interface {
	Create(ctx context.Context, caller *models.User, input RecordInput) (*models.MedicalRecord, error)
	GetByID(ctx context.Context, caller *models.User, recordID string) (*models.MedicalRecord, error)
	List(ctx context.Context, caller *models.User, patientID string) ([]models.MedicalRecord, error)
}

type recordService struct {
	recordRepo  repository.MedicalRecordRepository
	patientRepo repository.PatientRepository
}

// NewRecordService creates a new RecordService instance.
func NewRecordService(recordRepo repository.MedicalRecordRepository, patientRepo repository.PatientRepository) RecordService {
	return &recordService{
		recordRepo:  recordRepo,
		patientRepo: patientRepo,
	}
}

// Create authors a record against an existing patient profile. Only doctors
// and admins pass the role gate; a missing profile is ErrNotFound.
func (s *recordService) Create(ctx context.Context, caller *models.User, input RecordInput) (*models.MedicalRecord, error) {
	if err := authz.Authorize(caller, authz.ActionRecordCreate); err != nil {
		return nil, err
	}

	if _, err := s.patientRepo.FindByID(ctx, input.PatientID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	record := &models.MedicalRecord{
		ID:             uuid.NewString(),
		PatientID:      input.PatientID,
		DoctorID:       caller.ID,
		VisitDate:      now,
		ChiefComplaint: input.ChiefComplaint,
		Diagnosis:      input.Diagnosis,
		TreatmentPlan:  input.TreatmentPlan,
		Prescriptions:  input.Prescriptions,
		Notes:          input.Notes,
		FollowUpDate:   input.FollowUpDate,
		CreatedAt:      now,
	}

	if err := s.recordRepo.Create(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

// GetByID returns any record for a doctor or admin. A patient caller must
// own the profile the record references, otherwise ErrForbidden.
func (s *recordService) GetByID(ctx context.Context, caller *models.User, recordID string) (*models.MedicalRecord, error) {
	if err := authz.Authorize(caller, authz.ActionRecordRead); err != nil {
		return nil, err
	}

	record, err := s.recordRepo.FindByID(ctx, recordID)
	if err != nil {
		return nil, err
	}

	if !caller.Role.Privileged() {
		profile, err := s.patientRepo.FindByID(ctx, record.PatientID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, apperrors.ErrForbidden
			}
			return nil, err
		}
		if err := authz.AuthorizeOwned(caller, authz.ActionRecordRead, profile.UserID); err != nil {
			return nil, err
		}
	}

	return record, nil
}

// List returns records scoped by role: a patient sees only records bound to
// their own profile (an empty slice when no profile exists yet); doctors
// and admins see everything, optionally filtered by patient id.
func (s *recordService) List(ctx context.Context, caller *models.User, patientID string) ([]models.MedicalRecord, error) {
	if err := authz.Authorize(caller, authz.ActionRecordList); err != nil {
		return nil, err
	}

	if !caller.Role.Privileged() {
		profile, err := s.patientRepo.FindByUserID(ctx, caller.ID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return []models.MedicalRecord{}, nil
			}
			return nil, err
		}
		return s.recordRepo.ListByPatient(ctx, profile.ID)
	}

	if patientID != "" {
		return s.recordRepo.ListByPatient(ctx, patientID)
	}
	return s.recordRepo.List(ctx)
}
