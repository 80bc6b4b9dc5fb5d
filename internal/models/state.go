package models

// Theme represents the portal-wide display mode. The store keeps it in
// sync with emergency transport activity: emergency whenever any active
// SOS ride exists, clinical otherwise.
type Theme string

const (
	ThemeClinical  Theme = "clinical"
	ThemeEmergency Theme = "emergency"
)

// SystemConfig holds process-wide toggles.
type SystemConfig struct {
	SeniorMode          bool  `json:"seniorMode"`
	VirtualDoctorActive bool  `json:"virtualDoctorActive"`
	Theme               Theme `json:"theme"`
}

// State is the complete domain snapshot: every collection the portal
// operates on, replaced wholesale on each mutation. Collections that are
// newest-first keep insertion order as recency.
type State struct {
	Users             []User             `json:"users"`
	Patients          []Patient          `json:"patients"`
	Appointments      []Appointment      `json:"appointments"`
	TransportRequests []TransportRequest `json:"transportRequests"`
	Referrals         []Referral         `json:"referrals"`
	Tasks             []FollowUpTask     `json:"tasks"`
	Messages          []Message          `json:"messages"`
	Notifications     []Notification     `json:"notifications"`
	SystemConfig      SystemConfig       `json:"systemConfig"`
}

// UserByID returns the user with the given id.
func (s *State) UserByID(id string) (User, bool) {
	for _, u := range s.Users {
		if u.ID == id {
			return u, true
		}
	}
	return User{}, false
}

// PatientByID returns the patient with the given id.
func (s *State) PatientByID(id string) (Patient, bool) {
	for _, p := range s.Patients {
		if p.ID == id {
			return p, true
		}
	}
	return Patient{}, false
}

// AppointmentByID returns the appointment with the given id.
func (s *State) AppointmentByID(id string) (Appointment, bool) {
	for _, a := range s.Appointments {
		if a.ID == id {
			return a, true
		}
	}
	return Appointment{}, false
}

// RideByID returns the transport request with the given id.
func (s *State) RideByID(id string) (TransportRequest, bool) {
	for _, r := range s.TransportRequests {
		if r.ID == id {
			return r, true
		}
	}
	return TransportRequest{}, false
}

// ActiveEmergencyFor returns the patient's active (non-completed)
// emergency ride, if one exists.
func (s *State) ActiveEmergencyFor(patientID string) (TransportRequest, bool) {
	for _, r := range s.TransportRequests {
		if r.PatientID == patientID && r.IsEmergency && r.Active() {
			return r, true
		}
	}
	return TransportRequest{}, false
}

// HasActiveEmergency reports whether any patient has an active emergency
// ride.
func (s *State) HasActiveEmergency() bool {
	for _, r := range s.TransportRequests {
		if r.IsEmergency && r.Active() {
			return true
		}
	}
	return false
}
