package store

import (
	"fmt"
	"time"

	"beacon-care-server/internal/models"
)

// ScheduleAppointment creates a new SCHEDULED visit at the clinical site
// for the named patient. Any other SCHEDULED appointment the patient has
// is dropped from the collection, so at most one scheduled visit exists
// per patient afterwards. Returns nil when the patient cannot be
// resolved.
func (s *Store) ScheduleAppointment(patientName, datetime string) *models.Appointment {
	var created *models.Appointment

	s.update(func(cur models.State) (models.State, bool) {
		patient, ok := findPatient(cur.Patients, patientName)
		if !ok {
			return cur, false
		}

		appt := models.Appointment{
			ID:          newID("a"),
			PatientID:   patient.ID,
			PatientName: patient.Name,
			Datetime:    CanonicalTime(datetime, s.now()),
			Location:    DefaultSite,
			Status:      models.ApptScheduled,
			Provider:    "Staff Physician",
		}

		kept := make([]models.Appointment, 0, len(cur.Appointments)+1)
		kept = append(kept, appt)
		for _, a := range cur.Appointments {
			if a.PatientID != patient.ID || a.Status != models.ApptScheduled {
				kept = append(kept, a)
			}
		}

		next := cur
		next.Appointments = kept
		created = &appt
		return next, true
	})

	if created != nil {
		s.AddNotification(fmt.Sprintf("Scheduled: %s visit for %s.", DefaultSite, created.PatientName), "")
	}
	return created
}

// CancelAppointmentsFor removes every appointment for the named patient
// from the collection. This is intentionally history-destroying, unlike
// CancelAppointment which records a CANCELLED status.
func (s *Store) CancelAppointmentsFor(patientName string) bool {
	var name string

	ok := s.update(func(cur models.State) (models.State, bool) {
		patient, found := findPatient(cur.Patients, patientName)
		if !found {
			return cur, false
		}
		name = patient.Name

		kept := make([]models.Appointment, 0, len(cur.Appointments))
		for _, a := range cur.Appointments {
			if a.PatientID != patient.ID {
				kept = append(kept, a)
			}
		}

		next := cur
		next.Appointments = kept
		return next, true
	})

	if ok {
		s.AddNotification(fmt.Sprintf("Cancelled all visits for %s.", name), "")
	}
	return ok
}

// CancelAppointment marks a single appointment CANCELLED, preserving it
// in history.
func (s *Store) CancelAppointment(id string) bool {
	return s.setAppointmentStatus(id, models.ApptCancelled)
}

// ConfirmAppointment marks an appointment CONFIRMED.
func (s *Store) ConfirmAppointment(id string) bool {
	return s.setAppointmentStatus(id, models.ApptConfirmed)
}

// CompleteAppointment marks an appointment COMPLETED and records the
// encounter on the coordination desk feed.
func (s *Store) CompleteAppointment(id string) bool {
	if !s.setAppointmentStatus(id, models.ApptCompleted) {
		return false
	}
	s.AddNotification("Clinical encounter completed and recorded in Beacon.", "")
	return true
}

func (s *Store) setAppointmentStatus(id string, status models.ApptStatus) bool {
	return s.update(func(cur models.State) (models.State, bool) {
		found := false
		appts := make([]models.Appointment, len(cur.Appointments))
		for i, a := range cur.Appointments {
			if a.ID == id {
				a.Status = status
				found = true
			}
			appts[i] = a
		}
		if !found {
			return cur, false
		}

		next := cur
		next.Appointments = appts
		return next, true
	})
}

// UpdateAppointmentTime retimes the named patient's SCHEDULED
// appointments to the given datetime.
func (s *Store) UpdateAppointmentTime(patientName, datetime string) bool {
	return s.update(func(cur models.State) (models.State, bool) {
		patient, found := findPatient(cur.Patients, patientName)
		if !found {
			return cur, false
		}

		when := CanonicalTime(datetime, s.now())
		appts := make([]models.Appointment, len(cur.Appointments))
		for i, a := range cur.Appointments {
			if a.PatientID == patient.ID && a.Status == models.ApptScheduled {
				a.Datetime = when
			}
			appts[i] = a
		}

		next := cur
		next.Appointments = appts
		return next, true
	})
}

// RescheduleByHours shifts an appointment by the given number of hours
// and forces its status back to SCHEDULED.
func (s *Store) RescheduleByHours(id string, hours int) bool {
	return s.shiftAppointment(id, time.Duration(hours)*time.Hour)
}

// RescheduleOneWeek pushes an appointment one week out from its original
// datetime and forces it back to SCHEDULED.
func (s *Store) RescheduleOneWeek(id string) bool {
	if !s.shiftAppointment(id, 7*24*time.Hour) {
		return false
	}
	s.AddNotification("Rescheduled via Beacon for one week from original date.", "")
	return true
}

func (s *Store) shiftAppointment(id string, by time.Duration) bool {
	return s.update(func(cur models.State) (models.State, bool) {
		found := false
		appts := make([]models.Appointment, len(cur.Appointments))
		for i, a := range cur.Appointments {
			if a.ID == id {
				a.Datetime = a.Datetime.Add(by)
				a.Status = models.ApptScheduled
				found = true
			}
			appts[i] = a
		}
		if !found {
			return cur, false
		}

		next := cur
		next.Appointments = appts
		return next, true
	})
}
