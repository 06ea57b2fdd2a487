// Package refdata supplies the static read-only reference records consumed
// by the portal screens: medical records, consultations, and prescriptions.
// The snapshot is fixed at startup; no update interface exists.
package refdata

import (
	"encoding/json"
	"fmt"
	"os"

	"medicare/internal/model"
)

// Snapshot is the full reference data set supplied at process start.
type Snapshot struct {
	MedicalRecords []model.MedicalRecord `json:"medical_records"`
	Consultations  []model.Consultation  `json:"consultations"`
	Prescriptions  []model.Prescription  `json:"prescriptions"`
}

// Default returns the built-in demo snapshot.
func Default() *Snapshot {
	return &Snapshot{
		MedicalRecords: []model.MedicalRecord{
			{Patient: "bharath@example.com", Title: "Blood Test", Date: "2025-01-20", Report: "Normal"},
			{Patient: "ravi@example.com", Title: "X-Ray", Date: "2025-01-12", Report: "No Issues"},
		},
		Consultations: []model.Consultation{
			{Doctor: "dr.anita@example.com", Patient: "bharath@example.com", Date: "2025-02-01", Status: "Completed"},
		},
		Prescriptions: []model.Prescription{
			{Doctor: "dr.anita@example.com", Patient: "bharath@example.com", Medicine: "Paracetamol", Dosage: "500mg", Date: "2025-02-05"},
		},
	}
}

// LoadFile reads a snapshot from a JSON seed file.
func LoadFile(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	return &snap, nil
}

// MedicalRecordsFor returns the records belonging to a patient.
func (s *Snapshot) MedicalRecordsFor(patientEmail string) []model.MedicalRecord {
	var out []model.MedicalRecord
	for _, r := range s.MedicalRecords {
		if r.Patient == patientEmail {
			out = append(out, r)
		}
	}
	return out
}

// AllMedicalRecords returns every record, for the doctor records screen.
func (s *Snapshot) AllMedicalRecords() []model.MedicalRecord {
	return append([]model.MedicalRecord(nil), s.MedicalRecords...)
}

// ConsultationsFor returns the consultations held by a doctor.
func (s *Snapshot) ConsultationsFor(doctorEmail string) []model.Consultation {
	var out []model.Consultation
	for _, c := range s.Consultations {
		if c.Doctor == doctorEmail {
			out = append(out, c)
		}
	}
	return out
}

// AllConsultations returns every consultation.
func (s *Snapshot) AllConsultations() []model.Consultation {
	return append([]model.Consultation(nil), s.Consultations...)
}

// PrescriptionsFor returns the prescriptions issued to a patient.
func (s *Snapshot) PrescriptionsFor(patientEmail string) []model.Prescription {
	var out []model.Prescription
	for _, p := range s.Prescriptions {
		if p.Patient == patientEmail {
			out = append(out, p)
		}
	}
	return out
}

// PrescriptionsByDoctor returns the prescriptions issued by a doctor.
func (s *Snapshot) PrescriptionsByDoctor(doctorEmail string) []model.Prescription {
	var out []model.Prescription
	for _, p := range s.Prescriptions {
		if p.Doctor == doctorEmail {
			out = append(out, p)
		}
	}
	return out
}

// AllPrescriptions returns every prescription, for the pharmacist screen.
func (s *Snapshot) AllPrescriptions() []model.Prescription {
	return append([]model.Prescription(nil), s.Prescriptions...)
}
