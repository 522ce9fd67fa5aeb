package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/kaifmomin2004/EHR-Project/internal/authz"
	"github.com/kaifmomin2004/EHR-Project/internal/models"
	"github.com/kaifmomin2004/EHR-Project/internal/repository"
)

// ProfileInput carries the caller-supplied fields of a patient profile.
type ProfileInput struct {
	DateOfBirth           string        `json:"date_of_birth" binding:"required"`
	Gender                models.Gender `json:"gender" binding:"required,oneof=male female other"`
	PhoneNumber           string        `json:"phone_number" binding:"required"`
	Address               string        `json:"address" binding:"required"`
	EmergencyContactName  string        `json:"emergency_contact_name" binding:"required"`
	EmergencyContactPhone string        `json:"emergency_contact_phone" binding:"required"`
	BloodType             string        `json:"blood_type"`
	Allergies             []string      `json:"allergies"`
	ChronicConditions     []string      `json:"chronic_conditions"`
	CurrentMedications    []string      `json:"current_medications"`
}

// PatientService exposes the guarded patient profile operations.
//
// Profile creation is an explicit two-step protocol: GetOwnProfile returns
// ErrNotFound until the patient invokes CreateOwnProfile; the two outcomes
// are never conflated.
type PatientService interface {
	CreateOwnProfile(ctx context.Context, caller *models.User, input ProfileInput) (*models.PatientProfile, error)
	GetOwnProfile(ctx context.Context, caller *models.User) (*models.PatientProfile, error)
	UpdateOwnProfile(ctx context.Context, caller *models.User, input ProfileInput) (*models.PatientProfile, error)
	GetByID(ctx context.Context, caller *models.User, profileID string) (*models.PatientProfile, error)
	List(ctx context.Context, caller *models.User) ([]models.PatientProfile, error)
}

type patientService struct {
	patientRepo repository.PatientRepository
}

// NewPatientService creates a new PatientService instance.
func NewPatientService(patientRepo repository.PatientRepository) PatientService {
	return &patientService{patientRepo: patientRepo}
}

func (s *patientService) CreateOwnProfile(ctx context.Context, caller *models.User, input ProfileInput) (*models.PatientProfile, error) {
	if err := authz.Authorize(caller, authz.ActionProfileCreate); err != nil {
		return nil, err
	}
	if !input.Gender.Valid() {
		return nil, fmt.Errorf("invalid gender %q", input.Gender)
	}

	now := time.Now().UTC()
	profile := &models.PatientProfile{
		ID:                    uuid.NewString(),
		UserID:                caller.ID,
		DateOfBirth:           input.DateOfBirth,
		Gender:                input.Gender,
		PhoneNumber:           input.PhoneNumber,
		Address:               input.Address,
		EmergencyContactName:  input.EmergencyContactName,
		EmergencyContactPhone: input.EmergencyContactPhone,
		BloodType:             input.BloodType,
		Allergies:             input.Allergies,
		ChronicConditions:     input.ChronicConditions,
		CurrentMedications:    input.CurrentMedications,
		CreatedAt:             now,
		UpdatedAt:             now,
	}

	if err := s.patientRepo.Create(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *patientService) GetOwnProfile(ctx context.Context, caller *models.User) (*models.PatientProfile, error) {
	if err := authz.Authorize(caller, authz.ActionProfileReadSelf); err != nil {
		return nil, err
	}
	return s.patientRepo.FindByUserID(ctx, caller.ID)
}

func (s *patientService) UpdateOwnProfile(ctx context.Context, caller *models.User, input ProfileInput) (*models.PatientProfile, error) {
	if err := authz.Authorize(caller, authz.ActionProfileUpdateSelf); err != nil {
		return nil, err
	}
	if !input.Gender.Valid() {
		return nil, fmt.Errorf("invalid gender %q", input.Gender)
	}

	profile, err := s.patientRepo.FindByUserID(ctx, caller.ID)
	if err != nil {
		return nil, err
	}

	profile.DateOfBirth = input.DateOfBirth
	profile.Gender = input.Gender
	profile.PhoneNumber = input.PhoneNumber
	profile.Address = input.Address
	profile.EmergencyContactName = input.EmergencyContactName
	profile.EmergencyContactPhone = input.EmergencyContactPhone
	profile.BloodType = input.BloodType
	profile.Allergies = input.Allergies
	profile.ChronicConditions = input.ChronicConditions
	profile.CurrentMedications = input.CurrentMedications
	profile.UpdatedAt = time.Now().UTC()

	if err := s.patientRepo.Update(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// GetByID returns any profile for a doctor or admin. A patient caller is
// denied with ErrForbidden unless the profile is their own; existence of
// another patient's profile is still acknowledged only as forbidden.
func (s *patientService) GetByID(ctx context.Context, caller *models.User, profileID string) (*models.PatientProfile, error) {
	if err := authz.Authorize(caller, authz.ActionProfileRead); err != nil {
		return nil, err
	}

	profile, err := s.patientRepo.FindByID(ctx, profileID)
	if err != nil {
		return nil, err
	}

	if err := authz.AuthorizeOwned(caller, authz.ActionProfileRead, profile.UserID); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *patientService) List(ctx context.Context, caller *models.User) ([]models.PatientProfile, error) {
	if err := authz.Authorize(caller, authz.ActionPatientList); err != nil {
		return nil, err
	}
	return s.patientRepo.List(ctx)
}
