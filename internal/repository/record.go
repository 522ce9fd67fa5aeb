package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/kaifmomin2004/EHR-Project/internal/apperrors"
	"github.com/kaifmomin2004/EHR-Project/internal/models"
	"gorm.io/gorm"
)

// MedicalRecordRepository defines data operations on medical records.
// Records are append-only: there is deliberately no update or delete.
type MedicalRecordRepository interface {
	FindByID(ctx context.Context, id string) (*models.MedicalRecord, error)
	Create(ctx context.Context, record *models.MedicalRecord) error
	ListByPatient(ctx context.Context, patientID string) ([]models.MedicalRecord, error)
	List(ctx context.Context) ([]models.MedicalRecord, error)
}

type medicalRecordRepository struct {
	db *gorm.DB
}

// NewMedicalRecordRepository creates a new MedicalRecordRepository instance.
func NewMedicalRecordRepository(db *gorm.DB) MedicalRecordRepository {
	return &medicalRecordRepository{db: db}
}

func (r *medicalRecordRepository) FindByID(ctx context.Context, id string) (*models.MedicalRecord, error) {
	var record models.MedicalRecord
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find medical record %s: %w", id, err)
	}
	return &record, nil
}

func (r *medicalRecordRepository) Create(ctx context.Context, record *models.MedicalRecord) error {
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("failed to create medical record: %w", err)
	}
	return nil
}

func (r *medicalRecordRepository) ListByPatient(ctx context.Context, patientID string) ([]models.MedicalRecord, error) {
	var records []models.MedicalRecord
	err := r.db.WithContext(ctx).Where("patient_id = ?", patientID).Order("visit_date desc").Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list medical records for patient %s: %w", patientID, err)
	}
	return records, nil
}

func (r *medicalRecordRepository) List(ctx context.Context) ([]models.MedicalRecord, error) {
	var records []models.MedicalRecord
	if err := r.db.WithContext(ctx).Order("visit_date desc").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to list medical records: %w", err)
	}
	return records, nil
}
