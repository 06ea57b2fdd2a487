package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"medicare/internal/errors"
	"medicare/internal/model"
	"medicare/internal/nav"
	"medicare/internal/portal"
)

// runView is a line-oriented stand-in for the browser view layer: it renders
// the current screen, dispatches one command, and re-renders. The core never
// sees anything but its own query and command surfaces.
func runView(ctx context.Context, app *portal.Portal) {
	sc := bufio.NewScanner(os.Stdin)
	for {
		render(app)
		fmt.Print("> ")
		if !sc.Scan() {
			return
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			return
		}
		if err := dispatch(ctx, app, line); err != nil {
			fmt.Printf("error [%s]: %v\n", errors.Code(err), err)
		}
	}
}

func dispatch(ctx context.Context, app *portal.Portal, line string) error {
	fields := strings.Fields(line)
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "go":
		if len(args) != 1 {
			return fmt.Errorf("usage: go <screen>")
		}
		app.Goto(nav.Screen(args[0]))
		return nil
	case "signup":
		if len(args) != 3 {
			return fmt.Errorf("usage: signup <name> <email> <password>")
		}
		role, ok := signupRole(app.CurrentScreen())
		if !ok {
			return fmt.Errorf("not on a signup screen")
		}
		if _, err := app.RegisterAndLogin(ctx, args[0], args[1], args[2], role); err != nil {
			return err
		}
		app.Goto(nav.ScreenDashboard)
		return nil
	case "login":
		if len(args) != 3 {
			return fmt.Errorf("usage: login <email> <password> <role>")
		}
		if _, err := app.Login(args[0], args[1], model.Role(args[2])); err != nil {
			return err
		}
		app.Goto(nav.ScreenDashboard)
		return nil
	case "logout":
		app.Logout()
		return nil
	case "book":
		if len(args) != 3 {
			return fmt.Errorf("usage: book <doctorEmail> <date> <time>")
		}
		user := app.Current()
		if user == nil {
			return fmt.Errorf("not signed in")
		}
		if _, err := app.BookAppointment(ctx, user.Email, args[0], args[1], args[2]); err != nil {
			return err
		}
		app.Goto(nav.ScreenMyAppointments)
		return nil
	case "pay":
		if len(args) != 2 && len(args) != 3 {
			return fmt.Errorf("usage: pay <amount> <method> [cardNumber]")
		}
		user := app.Current()
		if user == nil {
			return fmt.Errorf("not signed in")
		}
		card := ""
		if len(args) == 3 {
			card = args[2]
		}
		if _, err := app.RecordPayment(ctx, user.Email, args[0], model.PaymentMethod(args[1]), card); err != nil {
			return err
		}
		fmt.Println("payment recorded")
		return nil
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func signupRole(screen nav.Screen) (model.Role, bool) {
	switch screen {
	case nav.ScreenSignupPatient:
		return model.RolePatient, true
	case nav.ScreenSignupDoctor:
		return model.RoleDoctor, true
	case nav.ScreenSignupPharmacist:
		return model.RolePharmacist, true
	}
	return "", false
}

func render(app *portal.Portal) {
	screen := app.CurrentScreen()
	user := app.Current()
	ref := app.Reference()

	fmt.Printf("\n-- %s --\n", screen)
	switch screen {
	case nav.ScreenHome:
		fmt.Println("MediCare Virtual. Commands: go signupPatient|signupDoctor|signupPharmacist|login")
	case nav.ScreenLogin:
		fmt.Println("Sign in: login <email> <password> <patient|doctor|pharmacist>")
	case nav.ScreenSignupPatient, nav.ScreenSignupDoctor, nav.ScreenSignupPharmacist:
		fmt.Println("Create account: signup <name> <email> <password>")
	case nav.ScreenDashboard:
		if user == nil {
			fmt.Println("Please sign in (go login)")
		} else {
			fmt.Printf("Signed in as %s (%s)\n", user.Name, user.Role)
		}
	case nav.ScreenBookAppointment:
		fmt.Println("Doctors:")
		for _, d := range app.DoctorRoster() {
			fmt.Printf("  %s (%s)\n", d.Name, d.Email)
		}
		fmt.Println("Book: book <doctorEmail> <YYYY-MM-DD> <HH:MM>")
	case nav.ScreenMyAppointments:
		for _, a := range app.AppointmentsFor(user.Email) {
			fmt.Printf("  Dr: %s  %s %s  [%s]\n", a.DoctorEmail, a.Date, a.Time, a.Status)
		}
	case nav.ScreenPayments:
		for _, p := range app.PaymentsFor(user.Email) {
			fmt.Printf("  %s  %s  %s\n", p.Amount, p.Method, p.Timestamp.Format("2006-01-02 15:04"))
		}
		fmt.Println("Pay: pay <amount> <card|upi> [cardNumber]")
	case nav.ScreenMedicalRecords:
		for _, r := range ref.MedicalRecordsFor(user.Email) {
			fmt.Printf("  %s  %s  %s\n", r.Title, r.Date, r.Report)
		}
	case nav.ScreenPrescriptions:
		for _, p := range ref.PrescriptionsFor(user.Email) {
			fmt.Printf("  %s %s  %s\n", p.Medicine, p.Dosage, p.Date)
		}
	case nav.ScreenDoctorAppointments:
		for _, a := range app.AllAppointments() {
			fmt.Printf("  Patient: %s  %s %s\n", a.PatientEmail, a.Date, a.Time)
		}
	case nav.ScreenDoctorRecords:
		for _, r := range ref.AllMedicalRecords() {
			fmt.Printf("  %s  %s  %s\n", r.Patient, r.Title, r.Date)
		}
	case nav.ScreenDoctorConsultations:
		for _, c := range ref.ConsultationsFor(user.Email) {
			fmt.Printf("  Patient: %s  %s  %s\n", c.Patient, c.Date, c.Status)
		}
	case nav.ScreenDoctorPrescriptions:
		for _, p := range ref.PrescriptionsByDoctor(user.Email) {
			fmt.Printf("  Patient: %s  %s %s\n", p.Patient, p.Medicine, p.Dosage)
		}
	case nav.ScreenPharmacistPrescriptions:
		for _, p := range ref.AllPrescriptions() {
			fmt.Printf("  Patient: %s  %s %s\n", p.Patient, p.Medicine, p.Dosage)
		}
	case nav.ScreenPharmacistOrders:
		fmt.Println("Coming soon")
	}
	fmt.Println("Also: go <screen> | logout | quit")
}
