package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/kaifmomin2004/EHR-Project/internal/apperrors"
	"github.com/kaifmomin2004/EHR-Project/internal/models"
	"gorm.io/gorm"
)

// PatientRepository defines data operations on patient profiles.
type PatientRepository interface {
	FindByID(ctx context.Context, id string) (*models.PatientProfile, error)
	FindByUserID(ctx context.Context, userID string) (*models.PatientProfile, error)
	Create(ctx context.Context, profile *models.PatientProfile) error
	Update(ctx context.Context, profile *models.PatientProfile) error
	List(ctx context.Context) ([]models.PatientProfile, error)
}

type patientRepository struct {
	db *gorm.DB
}

// NewPatientRepository creates a new PatientRepository instance.
func NewPatientRepository(db *gorm.DB) PatientRepository {
	return &patientRepository{db: db}
}

func (r *patientRepository) FindByID(ctx context.Context, id string) (*models.PatientProfile, error) {
	var profile models.PatientProfile
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find patient profile %s: %w", id, err)
	}
	return &profile, nil
}

func (r *patientRepository) FindByUserID(ctx context.Context, userID string) (*models.PatientProfile, error) {
	var profile models.PatientProfile
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find patient profile for user %s: %w", userID, err)
	}
	return &profile, nil
}

// Create inserts the profile. The unique index on user_id guarantees at most
// one profile per identity even under concurrent creation.
func (r *patientRepository) Create(ctx context.Context, profile *models.PatientProfile) error {
	if err := r.db.WithContext(ctx).Create(profile).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.ErrProfileExists
		}
		return fmt.Errorf("failed to create patient profile: %w", err)
	}
	return nil
}

func (r *patientRepository) Update(ctx context.Context, profile *models.PatientProfile) error {
	if err := r.db.WithContext(ctx).Save(profile).Error; err != nil {
		return fmt.Errorf("failed to update patient profile %s: %w", profile.ID, err)
	}
	return nil
}

func (r *patientRepository) List(ctx context.Context) ([]models.PatientProfile, error) {
	var profiles []models.PatientProfile
	if err := r.db.WithContext(ctx).Order("created_at").Find(&profiles).Error; err != nil {
		return nil, fmt.Errorf("failed to list patient profiles: %w", err)
	}
	return profiles, nil
}
