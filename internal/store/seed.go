package store

import (
	"time"

	"beacon-care-server/internal/models"
)

// DefaultSite is the clinical site every scheduled visit takes place at.
const DefaultSite = "Beacon Medical Center"

// EmergencyDestination is the fixed destination for SOS rides.
const EmergencyDestination = "BEACON EMERGENCY ROOM"

// SeedState returns the fixed seed dataset used when no persisted
// snapshot is available.
func SeedState(now time.Time) models.State {
	return models.State{
		Users: []models.User{
			{ID: "u1", Name: "Nurse Sarah", Role: models.RoleNurse, Phone: "555-0101"},
			{ID: "u2", Name: "Dr. James Wilson", Role: models.RoleDoctor, Phone: "555-0102"},
			{ID: "u3", Name: "Bill Driver", Role: models.RoleDriver, Phone: "555-0103"},
			{ID: "u4", Name: "Margaret Smith", Role: models.RolePatient, Phone: "555-0104", PatientID: "p1"},
		},
		Patients: []models.Patient{
			{ID: "p1", Name: "Margaret Smith", DOB: "1942-05-12", Phone: "555-0104", Address: "123 Ridge Rd, Clearwater", RiskLevel: models.RiskHigh, Notes: "Requires wheelchair access, post-hip surgery."},
			{ID: "p2", Name: "Arthur Penhaligon", DOB: "1938-11-20", Phone: "555-0105", Address: "45 Oak Ave", RiskLevel: models.RiskMedium, Notes: "Type 2 Diabetes management."},
			{ID: "p3", Name: "Evelyn Reed", DOB: "1945-02-15", Phone: "555-0106", Address: "78 Pine St", RiskLevel: models.RiskLow, Notes: "Bilateral cataracts."},
		},
		Appointments: []models.Appointment{
			{ID: "a1", PatientID: "p1", PatientName: "Margaret Smith", Datetime: CanonicalTime("2025-05-20T09:00:00Z", now), Location: DefaultSite, Status: models.ApptScheduled, Provider: "Dr. Heart"},
			{ID: "a2", PatientID: "p2", PatientName: "Arthur Penhaligon", Datetime: CanonicalTime("2025-05-18T14:30:00Z", now), Location: DefaultSite, Status: models.ApptConfirmed, Provider: "Dr. Diabetes"},
			{ID: "a3", PatientID: "p1", PatientName: "Margaret Smith", Datetime: CanonicalTime("2025-05-15T10:00:00Z", now), Location: DefaultSite, Status: models.ApptMissed, Provider: "PT Jane"},
		},
		TransportRequests: []models.TransportRequest{
			{ID: "t1", PatientID: "p1", AppointmentID: "a1", PickupLocation: "123 Ridge Rd", Destination: DefaultSite, ScheduledTime: CanonicalTime("2025-05-20T08:15:00Z", now), Status: models.TransportRequested},
			{ID: "t2", PatientID: "p2", AppointmentID: "a2", PickupLocation: "45 Oak Ave", Destination: DefaultSite, ScheduledTime: CanonicalTime("2025-05-18T13:45:00Z", now), Status: models.TransportAssigned, DriverID: "u3", DriverName: "Bill Driver"},
		},
		Referrals: []models.Referral{
			{ID: "r1", PatientID: "p1", Specialty: "Cardiology", Provider: DefaultSite, Urgency: models.RiskHigh, Status: models.ReferralSent, RequestedDate: "2025-05-10"},
		},
		Tasks: []models.FollowUpTask{
			{ID: "k1", PatientID: "p1", Title: "Follow-up on missed PT appointment", Priority: models.TaskPriorityUrgent, Status: models.TaskPending, DueDate: "2025-05-16"},
		},
		Messages: []models.Message{},
		Notifications: []models.Notification{
			{ID: "n-init", UserID: "u1", Message: "Welcome to the Beacon Care Coordination Portal.", Status: models.NotificationUnread, CreatedAt: now},
		},
		SystemConfig: models.SystemConfig{
			SeniorMode:          true,
			VirtualDoctorActive: false,
			Theme:               models.ThemeClinical,
		},
	}
}
