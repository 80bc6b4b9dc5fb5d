package models

// Role enum
type Role string

const (
	RoleNurse   Role = "NURSE"
	RolePatient Role = "PATIENT"
	RoleDoctor  Role = "DOCTOR"
	RoleDriver  Role = "DRIVER"
)

// User represents an operator profile in the coordination portal.
// Users are seeded once and are immutable afterwards; a PATIENT-role
// user is linked to its patient record via PatientID.
type User struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Role      Role   `json:"role"`
	Phone     string `json:"phone"`
	PatientID string `json:"patientId,omitempty"`
	Avatar    string `json:"avatar,omitempty"`
}
