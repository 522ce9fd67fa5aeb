package models

import "time"

// Gender values accepted on a patient profile.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// Valid reports whether g is a known gender value.
func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

// PatientProfile holds the clinical and demographic data owned by exactly
// one patient identity. UserID is unique: at most one profile per identity.
type PatientProfile struct {
	ID                    string    `json:"id" gorm:"type:uuid;primaryKey"`
	UserID                string    `json:"user_id" gorm:"type:uuid;uniqueIndex;not null"`
	DateOfBirth           string    `json:"date_of_birth" gorm:"not null"`
	Gender                Gender    `json:"gender" gorm:"type:varchar(16);not null"`
	PhoneNumber           string    `json:"phone_number" gorm:"not null"`
	Address               string    `json:"address" gorm:"not null"`
	EmergencyContactName  string    `json:"emergency_contact_name" gorm:"not null"`
	EmergencyContactPhone string    `json:"emergency_contact_phone" gorm:"not null"`
	BloodType             string    `json:"blood_type,omitempty"`
	Allergies             []string  `json:"allergies" gorm:"type:jsonb;serializer:json"`
	ChronicConditions     []string  `json:"chronic_conditions" gorm:"type:jsonb;serializer:json"`
	CurrentMedications    []string  `json:"current_medications" gorm:"type:jsonb;serializer:json"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

// TableName returns the database table name for the PatientProfile model.
func (PatientProfile) TableName() string {
	return "patient_profiles"
}
