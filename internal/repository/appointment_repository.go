package repository

import (
	"context"

	"medicare/internal/model"
	"medicare/internal/store"
)

// AppointmentRepository defines persistence operations on the Appointments
// collection.
type AppointmentRepository interface {
	Append(ctx context.Context, appt *model.Appointment) error
	ListByPatient(email string) []model.Appointment
	List() []model.Appointment
	LastID() int64
}

type appointmentRepository struct {
	store store.Store
	appts []model.Appointment
}

// NewAppointmentRepository hydrates the Appointments collection from the
// durable store.
func NewAppointmentRepository(ctx context.Context, st store.Store) (AppointmentRepository, error) {
	appts, err := loadCollection[model.Appointment](ctx, st, store.KeyAppointments)
	if err != nil {
		return nil, err
	}
	return &appointmentRepository{store: st, appts: appts}, nil
}

// Append adds the appointment and re-serializes the full collection.
func (r *appointmentRepository) Append(ctx context.Context, appt *model.Appointment) error {
	r.appts = append(r.appts, *appt)
	return persistCollection(ctx, r.store, store.KeyAppointments, r.appts)
}

// ListByPatient returns the patient's appointments, insertion order preserved.
func (r *appointmentRepository) ListByPatient(email string) []model.Appointment {
	var out []model.Appointment
	for _, a := range r.appts {
		if a.PatientEmail == email {
			out = append(out, a)
		}
	}
	return out
}

// List returns every appointment in insertion order.
func (r *appointmentRepository) List() []model.Appointment {
	return append([]model.Appointment(nil), r.appts...)
}

// LastID returns the highest id in the collection, or zero when empty. Ids
// are timestamp-derived, so the highest id is also the most recent.
func (r *appointmentRepository) LastID() int64 {
	var last int64
	for _, a := range r.appts {
		if a.ID > last {
			last = a.ID
		}
	}
	return last
}
