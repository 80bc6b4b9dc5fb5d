package store

import (
	"fmt"
	"strings"
	"time"

	"beacon-care-server/internal/models"
)

// Action values for ManageTransport and ManageTask.
const (
	ActionRequest = "REQUEST"
	ActionCancel  = "CANCEL"
	ActionAssign  = "ASSIGN"
	ActionCreate  = "CREATE"
	ActionResolve = "RESOLVE"
)

// RequestRide creates a REQUESTED ride for the patient. When an
// appointment is given, pickup is timed 45 minutes before the visit and
// the destination follows the visit location; otherwise the ride is for
// now, to the clinical site.
func (s *Store) RequestRide(patientID, appointmentID string) bool {
	var name string

	ok := s.update(func(cur models.State) (models.State, bool) {
		patient, found := cur.PatientByID(patientID)
		if !found {
			return cur, false
		}
		name = patient.Name

		ride := models.TransportRequest{
			ID:             newID("t"),
			PatientID:      patient.ID,
			PickupLocation: patient.Address,
			Destination:    DefaultSite,
			ScheduledTime:  s.now(),
			Status:         models.TransportRequested,
		}
		if appointmentID != "" {
			if appt, found := cur.AppointmentByID(appointmentID); found {
				ride.AppointmentID = appt.ID
				ride.Destination = appt.Location
				ride.ScheduledTime = appt.Datetime.Add(-45 * time.Minute)
			}
		}

		next := cur
		next.TransportRequests = append([]models.TransportRequest{ride}, cur.TransportRequests...)
		return next, true
	})

	if ok {
		s.AddNotification(fmt.Sprintf("Beacon Pickup requested for %s.", name), "")
	}
	return ok
}

// ManageTransport handles fleet intents addressed by patient name.
// REQUEST is idempotent while an open request exists; ASSIGN pairs the
// patient's open request with a fuzzy-resolved driver; CANCEL drops all
// of the patient's non-completed rides from the collection entirely.
func (s *Store) ManageTransport(action, patientName, driverName string) bool {
	switch action {
	case ActionRequest:
		return s.transportRequest(patientName)
	case ActionAssign:
		return s.transportAssign(patientName, driverName)
	default:
		return s.transportCancel(patientName)
	}
}

func (s *Store) transportRequest(patientName string) bool {
	var name string
	requested := false

	ok := s.update(func(cur models.State) (models.State, bool) {
		patient, found := findPatient(cur.Patients, patientName)
		if !found {
			return cur, false
		}
		name = patient.Name

		for _, r := range cur.TransportRequests {
			if r.PatientID == patient.ID && r.Status == models.TransportRequested {
				// Open request already queued; nothing to do.
				return cur, true
			}
		}

		ride := models.TransportRequest{
			ID:             newID("t"),
			PatientID:      patient.ID,
			PickupLocation: patient.Address,
			Destination:    DefaultSite,
			ScheduledTime:  s.now(),
			Status:         models.TransportRequested,
		}

		next := cur
		next.TransportRequests = append([]models.TransportRequest{ride}, cur.TransportRequests...)
		requested = true
		return next, true
	})

	if ok && requested {
		s.AddNotification(fmt.Sprintf("NEW PICKUP REQUEST: %s needs a ride to Beacon.", name), "")
	}
	return ok
}

func (s *Store) transportAssign(patientName, driverName string) bool {
	patient, found := s.FindPatient(patientName)
	if !found {
		return false
	}

	// Missing driver or no open request degrades to a no-op; the
	// patient reference itself resolved, so the intent is acknowledged.
	s.update(func(cur models.State) (models.State, bool) {
		driver, ok := findUser(cur.Users, driverName)
		if !ok {
			return cur, false
		}

		assigned := false
		rides := make([]models.TransportRequest, len(cur.TransportRequests))
		for i, r := range cur.TransportRequests {
			if r.PatientID == patient.ID && r.Status == models.TransportRequested {
				r.DriverID = driver.ID
				r.DriverName = driver.Name
				r.Status = models.TransportAssigned
				assigned = true
			}
			rides[i] = r
		}
		if !assigned {
			return cur, false
		}

		next := cur
		next.TransportRequests = rides
		return next, true
	})
	return true
}

func (s *Store) transportCancel(patientName string) bool {
	return s.update(func(cur models.State) (models.State, bool) {
		patient, found := findPatient(cur.Patients, patientName)
		if !found {
			return cur, false
		}

		kept := make([]models.TransportRequest, 0, len(cur.TransportRequests))
		for _, r := range cur.TransportRequests {
			if r.PatientID != patient.ID || r.Status == models.TransportCompleted {
				kept = append(kept, r)
			}
		}

		next := cur
		next.TransportRequests = kept
		return next, true
	})
}

// ClaimRide assigns a driver to a ride and moves it to ASSIGNED.
func (s *Store) ClaimRide(rideID, driverID, driverName string) bool {
	ok := s.update(func(cur models.State) (models.State, bool) {
		found := false
		rides := make([]models.TransportRequest, len(cur.TransportRequests))
		for i, r := range cur.TransportRequests {
			if r.ID == rideID {
				r.DriverID = driverID
				r.DriverName = driverName
				r.Status = models.TransportAssigned
				found = true
			}
			rides[i] = r
		}
		if !found {
			return cur, false
		}

		next := cur
		next.TransportRequests = rides
		return next, true
	})

	if ok {
		s.AddNotification(fmt.Sprintf("Ride %s claimed by %s via Beacon Fleet.", rideID, driverName), "")
	}
	return ok
}

// UpdateTransportStatus advances a ride through its dispatch states.
// Completing an emergency ride reverts the portal theme to clinical.
func (s *Store) UpdateTransportStatus(rideID string, status models.TransportStatus) bool {
	return s.update(func(cur models.State) (models.State, bool) {
		ride, found := cur.RideByID(rideID)
		if !found {
			return cur, false
		}

		rides := make([]models.TransportRequest, len(cur.TransportRequests))
		for i, r := range cur.TransportRequests {
			if r.ID == rideID {
				r.Status = status
			}
			rides[i] = r
		}

		next := cur
		next.TransportRequests = rides
		if ride.IsEmergency && status == models.TransportCompleted {
			next.SystemConfig.Theme = models.ThemeClinical
		}
		return next, true
	})
}

// FailRide marks a ride FAILED. Failing an emergency ride stands the
// portal down from emergency theme.
func (s *Store) FailRide(rideID, reason string) bool {
	ok := s.update(func(cur models.State) (models.State, bool) {
		ride, found := cur.RideByID(rideID)
		if !found {
			return cur, false
		}

		rides := make([]models.TransportRequest, len(cur.TransportRequests))
		for i, r := range cur.TransportRequests {
			if r.ID == rideID {
				r.Status = models.TransportFailed
			}
			rides[i] = r
		}

		next := cur
		next.TransportRequests = rides
		if ride.IsEmergency {
			next.SystemConfig.Theme = models.ThemeClinical
		}
		return next, true
	})

	if ok {
		s.log.Info().Str("ride", rideID).Str("reason", reason).Msg("ride failed")
	}
	return ok
}

// RequestEmergency dispatches an SOS ride for the patient: the portal
// theme flips to emergency and an ambulance ride appears already
// ASSIGNED, skipping the REQUESTED stage. A second request while one is
// active is a no-op, so at most one active emergency ride exists per
// patient.
func (s *Store) RequestEmergency(patientID string) bool {
	var patient models.Patient

	ok := s.update(func(cur models.State) (models.State, bool) {
		p, found := cur.PatientByID(patientID)
		if !found {
			return cur, false
		}
		if _, active := cur.ActiveEmergencyFor(patientID); active {
			return cur, false
		}
		patient = p

		ride := models.TransportRequest{
			ID:             newID("sos"),
			PatientID:      p.ID,
			PickupLocation: p.Address,
			Destination:    EmergencyDestination,
			ScheduledTime:  s.now(),
			Status:         models.TransportAssigned,
			DriverName:     "AMBULANCE UNIT 01",
			IsEmergency:    true,
		}

		next := cur
		next.TransportRequests = append([]models.TransportRequest{ride}, cur.TransportRequests...)
		next.SystemConfig.Theme = models.ThemeEmergency
		return next, true
	})

	if ok {
		s.AddNotification(fmt.Sprintf("EMERGENCY SOS: AMBULANCE DISPATCHED TO %s FOR %s.",
			strings.ToUpper(patient.Address), strings.ToUpper(patient.Name)), "")
	}
	return ok
}

// ResolveEmergency stands the portal down: the theme reverts to clinical
// and the patient's active emergency ride, if any, is completed.
func (s *Store) ResolveEmergency(patientID string) bool {
	resolved := false

	s.update(func(cur models.State) (models.State, bool) {
		next := cur
		next.SystemConfig.Theme = models.ThemeClinical

		if sos, active := cur.ActiveEmergencyFor(patientID); active {
			rides := make([]models.TransportRequest, len(cur.TransportRequests))
			for i, r := range cur.TransportRequests {
				if r.ID == sos.ID {
					r.Status = models.TransportCompleted
				}
				rides[i] = r
			}
			next.TransportRequests = rides
			resolved = true
		}
		return next, true
	})

	if resolved {
		s.AddNotification(fmt.Sprintf("Emergency situation for subject %s has been resolved.", patientID), "")
	}
	return resolved
}

// CallDriver records a fleet connection attempt on the notification
// feed. No ride state changes; the displayed ETA is a fixed constant,
// not a computed value.
func (s *Store) CallDriver(rideID string) {
	s.AddNotification(fmt.Sprintf("Connecting to Beacon Fleet for ride %s...", rideID), "")
}
