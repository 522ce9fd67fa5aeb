package service

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/google/uuid"
	"github.com/kaifmomin2004/EHR-Project/internal/apperrors"
	"github.com/kaifmomin2004/EHR-Project/internal/models"
)

func testUser(role models.Role) *models.User {
	return &models.User{
		ID:       uuid.NewString(),
		Email:    uuid.NewString() + "@example.com",
		FullName: "Test User",
		Role:     role,
	}
}

func testProfileInput() ProfileInput {
	return ProfileInput{
		DateOfBirth:           "1990-04-12",
		Gender:                models.GenderFemale,
		PhoneNumber:           "+1-555-0100",
		Address:               "12 Main St",
		EmergencyContactName:  "Next Of Kin",
		EmergencyContactPhone: "+1-555-0101",
		BloodType:             "O+",
		Allergies:             []string{"penicillin"},
		ChronicConditions:     []string{"asthma"},
		CurrentMedications:    []string{"salbutamol"},
	}
}

func TestPatient_LazyProfileProtocol(t *testing.T) {
	svc := NewPatientService(newFakePatientRepo())
	patient := testUser(models.RolePatient)
	ctx := context.Background()

	// Reading before creation is NotFound, never anything else.
	if _, err := svc.GetOwnProfile(ctx, patient); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("GetOwnProfile() before create error = %v, want ErrNotFound", err)
	}

	input := testProfileInput()
	created, err := svc.CreateOwnProfile(ctx, patient, input)
	if err != nil {
		t.Fatalf("CreateOwnProfile() error = %v", err)
	}
	if created.UserID != patient.ID {
		t.Errorf("created.UserID = %s, want %s", created.UserID, patient.ID)
	}

	// Subsequent reads return exactly the submitted fields.
	got, err := svc.GetOwnProfile(ctx, patient)
	if err != nil {
		t.Fatalf("GetOwnProfile() error = %v", err)
	}
	if got.DateOfBirth != input.DateOfBirth ||
		got.Gender != input.Gender ||
		got.PhoneNumber != input.PhoneNumber ||
		got.Address != input.Address ||
		got.BloodType != input.BloodType {
		t.Errorf("profile fields do not match submitted input: %+v", got)
	}
	if !reflect.DeepEqual(got.Allergies, input.Allergies) {
		t.Errorf("Allergies = %v, want %v", got.Allergies, input.Allergies)
	}

	// A second create conflicts.
	if _, err := svc.CreateOwnProfile(ctx, patient, input); !errors.Is(err, apperrors.ErrProfileExists) {
		t.Errorf("second CreateOwnProfile() error = %v, want ErrProfileExists", err)
	}
}

func TestPatient_CreateRequiresPatientRole(t *testing.T) {
	svc := NewPatientService(newFakePatientRepo())
	ctx := context.Background()

	for _, role := range []models.Role{models.RoleDoctor, models.RoleAdmin} {
		if _, err := svc.CreateOwnProfile(ctx, testUser(role), testProfileInput()); !errors.Is(err, apperrors.ErrForbidden) {
			t.Errorf("CreateOwnProfile() as %s error = %v, want ErrForbidden", role, err)
		}
	}
}

func TestPatient_UpdateOwnProfile(t *testing.T) {
	svc := NewPatientService(newFakePatientRepo())
	patient := testUser(models.RolePatient)
	ctx := context.Background()

	// Updating before creation is NotFound.
	if _, err := svc.UpdateOwnProfile(ctx, patient, testProfileInput()); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("UpdateOwnProfile() before create error = %v, want ErrNotFound", err)
	}

	if _, err := svc.CreateOwnProfile(ctx, patient, testProfileInput()); err != nil {
		t.Fatalf("CreateOwnProfile() error = %v", err)
	}

	updated := testProfileInput()
	updated.Address = "99 Elm Ave"
	updated.CurrentMedications = []string{"salbutamol", "fluticasone"}

	got, err := svc.UpdateOwnProfile(ctx, patient, updated)
	if err != nil {
		t.Fatalf("UpdateOwnProfile() error = %v", err)
	}
	if got.Address != "99 Elm Ave" {
		t.Errorf("Address = %s, want 99 Elm Ave", got.Address)
	}
	if len(got.CurrentMedications) != 2 {
		t.Errorf("CurrentMedications = %v, want two entries", got.CurrentMedications)
	}
}

func TestPatient_OwnershipGate(t *testing.T) {
	repo := newFakePatientRepo()
	svc := NewPatientService(repo)
	ctx := context.Background()

	p1 := testUser(models.RolePatient)
	p2 := testUser(models.RolePatient)

	profile1, err := svc.CreateOwnProfile(ctx, p1, testProfileInput())
	if err != nil {
		t.Fatalf("CreateOwnProfile(p1) error = %v", err)
	}
	profile2, err := svc.CreateOwnProfile(ctx, p2, testProfileInput())
	if err != nil {
		t.Fatalf("CreateOwnProfile(p2) error = %v", err)
	}

	// A patient can fetch their own profile by id.
	if _, err := svc.GetByID(ctx, p1, profile1.ID); err != nil {
		t.Errorf("GetByID(own) error = %v", err)
	}

	// Another patient's profile is always forbidden, not hidden as 404.
	if _, err := svc.GetByID(ctx, p1, profile2.ID); !errors.Is(err, apperrors.ErrForbidden) {
		t.Errorf("GetByID(other) error = %v, want ErrForbidden", err)
	}

	// Doctor and admin bypass the ownership gate.
	for _, role := range []models.Role{models.RoleDoctor, models.RoleAdmin} {
		if _, err := svc.GetByID(ctx, testUser(role), profile1.ID); err != nil {
			t.Errorf("GetByID() as %s error = %v", role, err)
		}
	}

	// A missing profile is NotFound for privileged callers.
	if _, err := svc.GetByID(ctx, testUser(models.RoleDoctor), uuid.NewString()); !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("GetByID(missing) error = %v, want ErrNotFound", err)
	}
}

func TestPatient_List(t *testing.T) {
	svc := NewPatientService(newFakePatientRepo())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := svc.CreateOwnProfile(ctx, testUser(models.RolePatient), testProfileInput()); err != nil {
			t.Fatalf("CreateOwnProfile() error = %v", err)
		}
	}

	profiles, err := svc.List(ctx, testUser(models.RoleDoctor))
	if err != nil {
		t.Fatalf("List() as doctor error = %v", err)
	}
	if len(profiles) != 3 {
		t.Errorf("List() returned %d profiles, want 3", len(profiles))
	}

	if _, err := svc.List(ctx, testUser(models.RolePatient)); !errors.Is(err, apperrors.ErrForbidden) {
		t.Errorf("List() as patient error = %v, want ErrForbidden", err)
	}
}
