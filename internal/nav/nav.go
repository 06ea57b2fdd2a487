// Package nav implements the role-gated screen navigation state machine.
// A transition that fails its guard lands on the login screen instead of
// returning an error; that redirect is part of the observable contract.
package nav

import "medicare/internal/model"

// Screen identifies one portal screen.
type Screen string

const (
	ScreenHome                    Screen = "home"
	ScreenSignupPatient           Screen = "signupPatient"
	ScreenSignupDoctor            Screen = "signupDoctor"
	ScreenSignupPharmacist        Screen = "signupPharmacist"
	ScreenLogin                   Screen = "login"
	ScreenDashboard               Screen = "dashboard"
	ScreenBookAppointment         Screen = "bookAppointment"
	ScreenMyAppointments          Screen = "myAppointments"
	ScreenPayments                Screen = "payments"
	ScreenMedicalRecords          Screen = "medicalRecords"
	ScreenPrescriptions           Screen = "prescriptions"
	ScreenDoctorAppointments      Screen = "doctorAppointments"
	ScreenDoctorRecords           Screen = "doctorRecords"
	ScreenDoctorConsultations     Screen = "doctorConsultations"
	ScreenDoctorPrescriptions     Screen = "doctorPrescriptions"
	ScreenPharmacistPrescriptions Screen = "pharmacistPrescriptions"
	ScreenPharmacistOrders        Screen = "pharmacistOrders"
)

// guard is the predicate a transition must satisfy.
type guard struct {
	authenticated bool
	role          model.Role // non-empty narrows to one role
}

var (
	guardNone          = guard{}
	guardAuthenticated = guard{authenticated: true}
	guardPatient       = guard{authenticated: true, role: model.RolePatient}
	guardDoctor        = guard{authenticated: true, role: model.RoleDoctor}
	guardPharmacist    = guard{authenticated: true, role: model.RolePharmacist}
)

// guards declares the access rule for every screen. The dashboard is
// deliberately unguarded: it renders its own sign-in prompt when no session
// exists instead of redirecting.
var guards = map[Screen]guard{
	ScreenHome:                    guardNone,
	ScreenSignupPatient:           guardNone,
	ScreenSignupDoctor:            guardNone,
	ScreenSignupPharmacist:        guardNone,
	ScreenLogin:                   guardNone,
	ScreenDashboard:               guardNone,
	ScreenBookAppointment:         guardPatient,
	ScreenMyAppointments:          guardPatient,
	ScreenPayments:                guardAuthenticated,
	ScreenMedicalRecords:          guardAuthenticated,
	ScreenPrescriptions:           guardAuthenticated,
	ScreenDoctorAppointments:      guardDoctor,
	ScreenDoctorRecords:           guardDoctor,
	ScreenDoctorConsultations:     guardDoctor,
	ScreenDoctorPrescriptions:     guardDoctor,
	ScreenPharmacistPrescriptions: guardPharmacist,
	ScreenPharmacistOrders:        guardPharmacist,
}

// Session exposes the slice of session state the navigator needs.
type Session interface {
	Current() *model.User
	Logout()
}

// Navigator tracks the current screen and enforces guards on transitions.
type Navigator struct {
	session Session
	current Screen
}

// New creates a navigator starting at the home screen.
func New(session Session) *Navigator {
	return &Navigator{session: session, current: ScreenHome}
}

// Current returns the active screen.
func (n *Navigator) Current() Screen {
	return n.current
}

// Goto requests a transition and returns the effective resulting screen.
// A request that fails its guard lands on the login screen; a screen outside
// the enumeration lands on home.
func (n *Navigator) Goto(screen Screen) Screen {
	g, ok := guards[screen]
	switch {
	case !ok:
		n.current = ScreenHome
	case n.allowed(g):
		n.current = screen
	default:
		n.current = ScreenLogin
	}
	return n.current
}

func (n *Navigator) allowed(g guard) bool {
	if !g.authenticated {
		return true
	}
	user := n.session.Current()
	if user == nil {
		return false
	}
	return g.role == "" || user.Role == g.role
}

// Logout clears the session identity and forces the home screen,
// unconditionally.
func (n *Navigator) Logout() {
	n.session.Logout()
	n.current = ScreenHome
}
