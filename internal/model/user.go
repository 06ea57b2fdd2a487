package model

// Role determines which portal screens and data a session may access.
type Role string

const (
	RolePatient    Role = "patient"
	RoleDoctor     Role = "doctor"
	RolePharmacist Role = "pharmacist"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RolePatient, RoleDoctor, RolePharmacist:
		return true
	}
	return false
}

// User represents a registered portal account. The email is the primary key
// and is matched case-sensitively. Passwords are stored and compared verbatim:
// this is a demo portal with no real authentication security.
type User struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
}

// Doctor is a bookable roster entry as shown on the booking screen.
type Doctor struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}
