package model

// AppointmentStatus represents the status of an appointment.
type AppointmentStatus string

const (
	AppointmentScheduled AppointmentStatus = "scheduled"
	AppointmentCompleted AppointmentStatus = "completed"
	AppointmentCancelled AppointmentStatus = "cancelled"
)

// Appointment is a single booking made by a patient. Records are append-only;
// the core never transitions status away from "scheduled".
type Appointment struct {
	ID           int64             `json:"id"`
	DoctorEmail  string            `json:"doctor"`
	PatientEmail string            `json:"patient"`
	Date         string            `json:"date"` // calendar date, YYYY-MM-DD
	Time         string            `json:"time"` // time of day, HH:MM
	Status       AppointmentStatus `json:"status"`
}
