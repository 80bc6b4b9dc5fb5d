package dispatch

import (
	"testing"

	"beacon-care-server/internal/models"
	"beacon-care-server/internal/store"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func newTestDispatcher(t *testing.T) (*Dispatcher, *store.Store) {
	t.Helper()
	s := store.New(nil, zerolog.Nop())
	return New(s), s
}

func seededUser(t *testing.T, s *store.Store, id string) models.User {
	t.Helper()
	state := s.State()
	u, found := state.UserByID(id)
	assert.True(t, found)
	return u
}

func TestPatientTargetOverride(t *testing.T) {
	d, s := newTestDispatcher(t)
	margaret := seededUser(t, s, "u4")

	// A patient session asking to book for someone else still books for
	// themselves.
	res := d.Dispatch(Command{
		FunctionName: FnManageAppointment,
		Action:       "ADD",
		PatientName:  "Arthur",
		Datetime:     "2025-05-21T10:00:00Z",
	}, margaret)
	assert.Equal(t, "Clinical schedule updated for Beacon Medical Center.", res.Reply)

	for _, a := range s.State().Appointments {
		if a.Status == models.ApptScheduled {
			assert.NotEqual(t, "p2", a.PatientID)
		}
	}
	scheduled := 0
	for _, a := range s.State().Appointments {
		if a.PatientID == "p1" && a.Status == models.ApptScheduled {
			scheduled++
		}
	}
	assert.Equal(t, 1, scheduled)
}

func TestNurseTargetsAnyPatient(t *testing.T) {
	d, s := newTestDispatcher(t)
	nurse := seededUser(t, s, "u1")

	res := d.Dispatch(Command{
		FunctionName: FnManageAppointment,
		Action:       "ADD",
		PatientName:  "evelyn",
		Datetime:     "15:00",
	}, nurse)
	assert.Equal(t, "Clinical schedule updated for Beacon Medical Center.", res.Reply)

	found := false
	for _, a := range s.State().Appointments {
		if a.PatientID == "p3" && a.Status == models.ApptScheduled {
			found = true
		}
	}
	assert.True(t, found)
}

func TestManageAppointmentCancelAndUpdate(t *testing.T) {
	d, s := newTestDispatcher(t)
	nurse := seededUser(t, s, "u1")

	d.Dispatch(Command{FunctionName: FnManageAppointment, Action: "UPDATE", PatientName: "Margaret", Datetime: "11:30"}, nurse)
	for _, a := range s.State().Appointments {
		if a.PatientID == "p1" && a.Status == models.ApptScheduled {
			assert.Equal(t, 11, a.Datetime.Hour())
			assert.Equal(t, 30, a.Datetime.Minute())
		}
	}

	d.Dispatch(Command{FunctionName: FnManageAppointment, Action: "CANCEL", PatientName: "Margaret"}, nurse)
	for _, a := range s.State().Appointments {
		assert.NotEqual(t, "p1", a.PatientID)
	}
}

func TestPatientDeniedAdministrativeTransport(t *testing.T) {
	d, s := newTestDispatcher(t)
	margaret := seededUser(t, s, "u4")

	ridesBefore := s.State().TransportRequests

	res := d.Dispatch(Command{
		FunctionName: FnManageTransport,
		Action:       store.ActionAssign,
		PatientName:  "Arthur",
		DriverName:   "Bill",
	}, margaret)

	assert.Equal(t, "Access denied to administrative logistics.", res.Reply)
	assert.Equal(t, ridesBefore, s.State().TransportRequests, "denied intents must not touch the store")
}

func TestPatientMayRequestOwnTransport(t *testing.T) {
	d, s := newTestDispatcher(t)
	margaret := seededUser(t, s, "u4")

	res := d.Dispatch(Command{
		FunctionName: FnManageTransport,
		Action:       store.ActionRequest,
		PatientName:  "Arthur",
	}, margaret)
	assert.Equal(t, "Beacon Fleet updated.", res.Reply)

	// Margaret already has an open request, so the idempotent path
	// applies to her record, not Arthur's.
	for _, r := range s.State().TransportRequests {
		if r.Status == models.TransportRequested {
			assert.NotEqual(t, "p2", r.PatientID)
		}
	}
}

func TestNurseAssignsDriver(t *testing.T) {
	d, s := newTestDispatcher(t)
	nurse := seededUser(t, s, "u1")

	res := d.Dispatch(Command{
		FunctionName: FnManageTransport,
		Action:       store.ActionAssign,
		PatientName:  "Margaret",
		DriverName:   "bill",
	}, nurse)
	assert.Equal(t, "Beacon Fleet updated.", res.Reply)

	state := s.State()
	ride, found := state.RideByID("t1")
	assert.True(t, found)
	assert.Equal(t, models.TransportAssigned, ride.Status)
	assert.Equal(t, "u3", ride.DriverID)
}

func TestManageTask(t *testing.T) {
	d, s := newTestDispatcher(t)
	doctor := seededUser(t, s, "u2")

	res := d.Dispatch(Command{
		FunctionName: FnManageTask,
		Action:       store.ActionCreate,
		PatientName:  "Arthur",
		Title:        "Check A1C results",
		Priority:     "HIGH",
	}, doctor)
	assert.Equal(t, "Beacon work queue updated.", res.Reply)

	task := s.State().Tasks[0]
	assert.Equal(t, "p2", task.PatientID)
	assert.Equal(t, models.TaskPriorityHigh, task.Priority)
}

func TestGetPatientInfo(t *testing.T) {
	d, s := newTestDispatcher(t)
	nurse := seededUser(t, s, "u1")

	res := d.Dispatch(Command{FunctionName: FnGetPatientInfo, PatientName: "arthur"}, nurse)
	assert.Equal(t, "Arthur Penhaligon: Risk MEDIUM.", res.Reply)

	res = d.Dispatch(Command{FunctionName: FnGetPatientInfo, PatientName: "nobody"}, nurse)
	assert.Equal(t, "Record not found in Beacon.", res.Reply)
}

func TestGetPatientInfoPatientSeesOnlySelf(t *testing.T) {
	d, s := newTestDispatcher(t)
	margaret := seededUser(t, s, "u4")

	// The override happens before resolution, so a patient cannot probe
	// for other records by name.
	res := d.Dispatch(Command{FunctionName: FnGetPatientInfo, PatientName: "Arthur"}, margaret)
	assert.Equal(t, "Margaret Smith: Risk HIGH.", res.Reply)
}

func TestNavigate(t *testing.T) {
	d, s := newTestDispatcher(t)
	nurse := seededUser(t, s, "u1")
	margaret := seededUser(t, s, "u4")

	res := d.Dispatch(Command{FunctionName: FnNavigate, Target: ViewLogistics}, nurse)
	assert.Equal(t, "Navigation to LOGISTICS verified.", res.Reply)
	assert.Equal(t, ViewLogistics, res.Navigate)

	res = d.Dispatch(Command{FunctionName: FnNavigate, Target: ViewLogistics}, margaret)
	assert.Equal(t, "Access denied to logistics system.", res.Reply)
	assert.Empty(t, res.Navigate)

	res = d.Dispatch(Command{FunctionName: FnNavigate, Target: ViewInbox}, margaret)
	assert.Equal(t, ViewInbox, res.Navigate)
}

func TestConsultVirtualDoctor(t *testing.T) {
	d, s := newTestDispatcher(t)
	margaret := seededUser(t, s, "u4")

	res := d.Dispatch(Command{FunctionName: FnConsultVirtualDoctor, Enable: true}, margaret)
	assert.Equal(t, "Beacon Consultation mode engaged.", res.Reply)
	assert.True(t, s.State().SystemConfig.VirtualDoctorActive)

	res = d.Dispatch(Command{FunctionName: FnConsultVirtualDoctor, Enable: false}, margaret)
	assert.Equal(t, "Beacon Consultation mode disengaged.", res.Reply)
	assert.False(t, s.State().SystemConfig.VirtualDoctorActive)
}

func TestUnknownIntentAcknowledgesGenerically(t *testing.T) {
	d, s := newTestDispatcher(t)
	nurse := seededUser(t, s, "u1")

	before := s.State()
	res := d.Dispatch(Command{FunctionName: "doSomethingElse"}, nurse)
	assert.Equal(t, "Command processed by Beacon.", res.Reply)
	assert.Equal(t, before.Appointments, s.State().Appointments)
	assert.Equal(t, before.TransportRequests, s.State().TransportRequests)
}
