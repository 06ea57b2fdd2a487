package model

// Reference records are static read-only data supplied at startup. The core
// consults them but never creates, mutates, or deletes them.

// MedicalRecord is a historical report attached to a patient.
type MedicalRecord struct {
	Patient string `json:"patient"`
	Title   string `json:"title"`
	Date    string `json:"date"`
	Report  string `json:"report"`
}

// Consultation is a past doctor-patient consultation.
type Consultation struct {
	Doctor  string `json:"doctor"`
	Patient string `json:"patient"`
	Date    string `json:"date"`
	Status  string `json:"status"`
}

// Prescription is a medicine prescribed to a patient by a doctor.
type Prescription struct {
	Doctor   string `json:"doctor"`
	Patient  string `json:"patient"`
	Medicine string `json:"medicine"`
	Dosage   string `json:"dosage"`
	Date     string `json:"date"`
}
