package models

import (
	"time"
)

// ApptStatus represents the status of an appointment
type ApptStatus string

const (
	ApptScheduled ApptStatus = "SCHEDULED"
	ApptConfirmed ApptStatus = "CONFIRMED"
	ApptCompleted ApptStatus = "COMPLETED"
	ApptMissed    ApptStatus = "MISSED"
	ApptCancelled ApptStatus = "CANCELLED"
)

// Appointment represents a scheduled clinical visit. PatientName is a
// denormalized snapshot taken when the appointment is created.
type Appointment struct {
	ID          string     `json:"id"`
	PatientID   string     `json:"patientId"`
	PatientName string     `json:"patientName"`
	Datetime    time.Time  `json:"datetime"`
	Location    string     `json:"location"`
	Status      ApptStatus `json:"status"`
	ReferralID  string     `json:"referralId,omitempty"`
	Provider    string     `json:"provider"`
}
