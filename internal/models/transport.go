package models

import (
	"time"
)

// TransportStatus represents the dispatch state of a ride.
type TransportStatus string

const (
	TransportRequested TransportStatus = "REQUESTED"
	TransportAssigned  TransportStatus = "ASSIGNED"
	TransportAccepted  TransportStatus = "ACCEPTED"
	TransportPickedUp  TransportStatus = "PICKED_UP"
	TransportCompleted TransportStatus = "COMPLETED"
	TransportFailed    TransportStatus = "FAILED"
)

// TransportRequest represents a fleet ride moving a patient between
// locations, optionally linked to an appointment. Emergency (SOS) rides
// carry IsEmergency and force the system into emergency theme until
// completed or failed.
type TransportRequest struct {
	ID             string          `json:"id"`
	PatientID      string          `json:"patientId"`
	AppointmentID  string          `json:"appointmentId,omitempty"`
	PickupLocation string          `json:"pickupLocation"`
	Destination    string          `json:"destination"`
	ScheduledTime  time.Time       `json:"scheduledTime"`
	Status         TransportStatus `json:"status"`
	DriverID       string          `json:"driverId,omitempty"`
	DriverName     string          `json:"driverName,omitempty"`
	IsEmergency    bool            `json:"isEmergency,omitempty"`
}

// Active reports whether the ride still occupies the fleet queue.
func (t TransportRequest) Active() bool {
	return t.Status != TransportCompleted
}
