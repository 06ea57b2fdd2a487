package service

import (
	"context"
	"fmt"
	"time"

	"medicare/internal/errors"
	"medicare/internal/model"
	"medicare/internal/repository"
)

const dateLayout = "2006-01-02"

// fallbackDoctors keeps booking demonstrable before any doctor has
// registered.
var fallbackDoctors = []model.Doctor{
	{Name: "Dr. Anita Sharma", Email: "dr.anita@example.com"},
	{Name: "Dr. Rahul Mehta", Email: "dr.rahul@example.com"},
}

// AppointmentService handles booking and appointment queries.
type AppointmentService interface {
	Book(ctx context.Context, patientEmail, doctorEmail, date, timeOfDay string) (*model.Appointment, error)
	ListForPatient(email string) []model.Appointment
	ListAll() []model.Appointment
	DoctorRoster() []model.Doctor
}

type appointmentService struct {
	users  repository.UserRepository
	appts  repository.AppointmentRepository
	lastID int64
}

// NewAppointmentService creates a new appointment service. Id generation
// resumes past the highest id already on file.
func NewAppointmentService(users repository.UserRepository, appts repository.AppointmentRepository) AppointmentService {
	return &appointmentService{
		users:  users,
		appts:  appts,
		lastID: appts.LastID(),
	}
}

// Book schedules an appointment for a patient. The date must parse as a
// calendar date no earlier than today; the comparison is midnight-aligned,
// so booking for today succeeds regardless of the time of day.
func (s *appointmentService) Book(ctx context.Context, patientEmail, doctorEmail, date, timeOfDay string) (*model.Appointment, error) {
	switch {
	case doctorEmail == "":
		return nil, errors.NewValidationError("doctor")
	case date == "":
		return nil, errors.NewValidationError("date")
	case timeOfDay == "":
		return nil, errors.NewValidationError("time")
	}

	day, err := time.ParseInLocation(dateLayout, date, time.Local)
	if err != nil {
		return nil, errors.NewValidationError("date")
	}
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
	if day.Before(today) {
		return nil, errors.ErrPastDate
	}

	appt := &model.Appointment{
		ID:           s.nextID(),
		DoctorEmail:  doctorEmail,
		PatientEmail: patientEmail,
		Date:         date,
		Time:         timeOfDay,
		Status:       model.AppointmentScheduled,
	}
	if err := s.appts.Append(ctx, appt); err != nil {
		return nil, fmt.Errorf("persist appointment: %w", err)
	}
	return appt, nil
}

// nextID derives ids from the wall clock in milliseconds, bumping past the
// last issued id when two bookings land in the same millisecond.
func (s *appointmentService) nextID() int64 {
	id := time.Now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

// ListForPatient returns the patient's appointments in booking order.
func (s *appointmentService) ListForPatient(email string) []model.Appointment {
	return s.appts.ListByPatient(email)
}

// ListAll returns every appointment, for the doctor screen.
func (s *appointmentService) ListAll() []model.Appointment {
	return s.appts.List()
}

// DoctorRoster returns the registered doctors, or the fixed fallback pair
// when none have signed up yet. Registered doctors are never mixed with the
// fallback entries.
func (s *appointmentService) DoctorRoster() []model.Doctor {
	doctors := s.users.ListByRole(model.RoleDoctor)
	if len(doctors) == 0 {
		return append([]model.Doctor(nil), fallbackDoctors...)
	}
	out := make([]model.Doctor, 0, len(doctors))
	for _, d := range doctors {
		out = append(out, model.Doctor{Name: d.Name, Email: d.Email})
	}
	return out
}
