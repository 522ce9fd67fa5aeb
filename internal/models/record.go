package models

import "time"

// MedicalRecord is an immutable clinical entry authored by a doctor or
// admin against a patient profile. There is no update or delete path.
type MedicalRecord struct {
	ID             string    `json:"id" gorm:"type:uuid;primaryKey"`
	PatientID      string    `json:"patient_id" gorm:"type:uuid;index;not null"`
	DoctorID       string    `json:"doctor_id" gorm:"type:uuid;not null"`
	VisitDate      time.Time `json:"visit_date" gorm:"not null"`
	ChiefComplaint string    `json:"chief_complaint" gorm:"not null"`
	Diagnosis      string    `json:"diagnosis" gorm:"not null"`
	TreatmentPlan  string    `json:"treatment_plan" gorm:"not null"`
	Prescriptions  []string  `json:"prescriptions" gorm:"type:jsonb;serializer:json"`
	Notes          string    `json:"notes,omitempty"`
	FollowUpDate   string    `json:"follow_up_date,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// TableName returns the database table name for the MedicalRecord model.
func (MedicalRecord) TableName() string {
	return "medical_records"
}
