package service

import (
	"context"
	"strings"
	"sync"

	"github.com/kaifmomin2004/EHR-Project/internal/apperrors"
	"github.com/kaifmomin2004/EHR-Project/internal/models"
	"github.com/kaifmomin2004/EHR-Project/internal/repository"
)

// In-memory fakes standing in for the gorm repositories. They enforce the
// same uniqueness guarantees the database constraints provide, so the
// concurrent-registration property is testable without a database.

var (
	_ repository.UserRepository          = (*fakeUserRepo)(nil)
	_ repository.PatientRepository       = (*fakePatientRepo)(nil)
	_ repository.MedicalRecordRepository = (*fakeRecordRepo)(nil)
)

type fakeUserRepo struct {
	mu      sync.Mutex
	byID    map[string]models.User
	byEmail map[string]string
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byID:    make(map[string]models.User),
		byEmail: make(map[string]string),
	}
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id, ok := r.byEmail[strings.ToLower(email)]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	user := r.byID[id]
	return &user, nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.byID[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &user, nil
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	email := strings.ToLower(user.Email)
	if _, exists := r.byEmail[email]; exists {
		return apperrors.ErrDuplicateIdentity
	}
	user.Email = email
	r.byEmail[email] = user.ID
	r.byID[user.ID] = *user
	return nil
}

func (r *fakeUserRepo) List(_ context.Context) ([]models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	users := make([]models.User, 0, len(r.byID))
	for _, user := range r.byID {
		users = append(users, user)
	}
	return users, nil
}

func (r *fakeUserRepo) delete(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user, ok := r.byID[id]; ok {
		delete(r.byEmail, user.Email)
		delete(r.byID, id)
	}
}

type fakePatientRepo struct {
	mu       sync.Mutex
	byID     map[string]models.PatientProfile
	byUserID map[string]string
}

func newFakePatientRepo() *fakePatientRepo {
	return &fakePatientRepo{
		byID:     make(map[string]models.PatientProfile),
		byUserID: make(map[string]string),
	}
}

func (r *fakePatientRepo) FindByID(_ context.Context, id string) (*models.PatientProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	profile, ok := r.byID[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &profile, nil
}

func (r *fakePatientRepo) FindByUserID(_ context.Context, userID string) (*models.PatientProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id, ok := r.byUserID[userID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	profile := r.byID[id]
	return &profile, nil
}

func (r *fakePatientRepo) Create(_ context.Context, profile *models.PatientProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byUserID[profile.UserID]; exists {
		return apperrors.ErrProfileExists
	}
	r.byUserID[profile.UserID] = profile.ID
	r.byID[profile.ID] = *profile
	return nil
}

func (r *fakePatientRepo) Update(_ context.Context, profile *models.PatientProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[profile.ID] = *profile
	return nil
}

func (r *fakePatientRepo) List(_ context.Context) ([]models.PatientProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	profiles := make([]models.PatientProfile, 0, len(r.byID))
	for _, profile := range r.byID {
		profiles = append(profiles, profile)
	}
	return profiles, nil
}

type fakeRecordRepo struct {
	mu      sync.Mutex
	records []models.MedicalRecord
}

func newFakeRecordRepo() *fakeRecordRepo {
	return &fakeRecordRepo{}
}

func (r *fakeRecordRepo) FindByID(_ context.Context, id string) (*models.MedicalRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, record := range r.records {
		if record.ID == id {
			rec := record
			return &rec, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *fakeRecordRepo) Create(_ context.Context, record *models.MedicalRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, *record)
	return nil
}

func (r *fakeRecordRepo) ListByPatient(_ context.Context, patientID string) ([]models.MedicalRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []models.MedicalRecord{}
	for _, record := range r.records {
		if record.PatientID == patientID {
			out = append(out, record)
		}
	}
	return out, nil
}

func (r *fakeRecordRepo) List(_ context.Context) ([]models.MedicalRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.MedicalRecord, len(r.records))
	copy(out, r.records)
	return out, nil
}
