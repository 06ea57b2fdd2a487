// Package portal assembles the repositories, services, session, and
// navigator into the single application-state object the view layer talks
// to. All shared mutable state lives here; nothing is ambient.
package portal

import (
	"context"

	"medicare/internal/model"
	"medicare/internal/nav"
	"medicare/internal/refdata"
	"medicare/internal/repository"
	"medicare/internal/service"
	"medicare/internal/store"
)

// Portal is the root of the application core. It exposes the query and
// command surfaces the view layer renders against.
type Portal struct {
	session      service.SessionService
	appointments service.AppointmentService
	payments     service.PaymentService
	nav          *nav.Navigator
	reference    *refdata.Snapshot
}

// New hydrates the three persisted collections from st and wires the core
// together. The reference snapshot is held read-only for the lifetime of the
// portal.
func New(ctx context.Context, st store.Store, reference *refdata.Snapshot) (*Portal, error) {
	users, err := repository.NewUserRepository(ctx, st)
	if err != nil {
		return nil, err
	}
	appts, err := repository.NewAppointmentRepository(ctx, st)
	if err != nil {
		return nil, err
	}
	payments, err := repository.NewPaymentRepository(ctx, st)
	if err != nil {
		return nil, err
	}

	session := service.NewSessionService(service.NewAccountService(users))
	return &Portal{
		session:      session,
		appointments: service.NewAppointmentService(users, appts),
		payments:     service.NewPaymentService(payments),
		nav:          nav.New(session),
		reference:    reference,
	}, nil
}

// Command surface.

// Login authenticates and holds the matched identity.
func (p *Portal) Login(email, password string, role model.Role) (*model.User, error) {
	return p.session.Login(email, password, role)
}

// RegisterAndLogin creates an account and signs it in.
func (p *Portal) RegisterAndLogin(ctx context.Context, name, email, password string, role model.Role) (*model.User, error) {
	return p.session.RegisterAndLogin(ctx, name, email, password, role)
}

// Logout clears the session and lands on the home screen.
func (p *Portal) Logout() {
	p.nav.Logout()
}

// BookAppointment schedules an appointment for a patient.
func (p *Portal) BookAppointment(ctx context.Context, patientEmail, doctorEmail, date, timeOfDay string) (*model.Appointment, error) {
	return p.appointments.Book(ctx, patientEmail, doctorEmail, date, timeOfDay)
}

// RecordPayment appends a payment to the ledger.
func (p *Portal) RecordPayment(ctx context.Context, userEmail, amount string, method model.PaymentMethod, cardNumber string) (*model.Payment, error) {
	return p.payments.Record(ctx, userEmail, amount, method, cardNumber)
}

// Goto requests a screen transition and returns the effective screen.
func (p *Portal) Goto(screen nav.Screen) nav.Screen {
	return p.nav.Goto(screen)
}

// Query surface.

// Current returns the signed-in user, or nil.
func (p *Portal) Current() *model.User {
	return p.session.Current()
}

// CurrentScreen returns the active screen.
func (p *Portal) CurrentScreen() nav.Screen {
	return p.nav.Current()
}

// DoctorRoster returns the bookable doctors.
func (p *Portal) DoctorRoster() []model.Doctor {
	return p.appointments.DoctorRoster()
}

// AppointmentsFor returns a patient's appointments.
func (p *Portal) AppointmentsFor(email string) []model.Appointment {
	return p.appointments.ListForPatient(email)
}

// AllAppointments returns every appointment, for the doctor screen.
func (p *Portal) AllAppointments() []model.Appointment {
	return p.appointments.ListAll()
}

// PaymentsFor returns a user's payments.
func (p *Portal) PaymentsFor(email string) []model.Payment {
	return p.payments.ListForUser(email)
}

// Reference returns the read-only reference data snapshot.
func (p *Portal) Reference() *refdata.Snapshot {
	return p.reference
}
