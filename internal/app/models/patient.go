package models

import "time"

// PatientProfile is the read-only projection served by the profile service.
// It is fetched fresh per view and never mutated locally.
type PatientProfile struct {
	ID          string          `json:"id"`
	UserID      string          `json:"userId"`
	FullName    string          `json:"fullName"`
	Gender      string          `json:"gender"`
	Allergies   string          `json:"allergies"`
	ContactInfo ContactInfo     `json:"contactInfo"`
	History     MedicalHistory  `json:"medicalHistory"`
	Records     []MedicalRecord `json:"medicalRecords"`
}

type ContactInfo struct {
	Address     string `json:"address"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
}

type MedicalHistory struct {
	DiagnosedAt             time.Time `json:"diagnosedAt"`
	SpecificMentalDisorders []string  `json:"specificMentalDisorders"`
	PhysicalSymptoms        []string  `json:"physicalSymptoms"`
}

type MedicalRecord struct {
	ID                      string    `json:"id"`
	Notes                   string    `json:"notes"`
	Status                  string    `json:"status"`
	CreatedAt               time.Time `json:"createdAt"`
	SpecificMentalDisorders []string  `json:"specificMentalDisorders"`
}
