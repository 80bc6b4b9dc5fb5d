package store

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"beacon-care-server/internal/models"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

// Compile-time check to ensure memPersister implements Persister
var _ Persister = (*memPersister)(nil)

// memPersister is an in-memory Persister for tests.
type memPersister struct {
	data     []byte
	saves    int
	failSave bool
}

func (m *memPersister) Load() ([]byte, error) {
	return m.data, nil
}

func (m *memPersister) Save(data []byte) error {
	if m.failSave {
		return errors.New("save failed")
	}
	m.saves++
	m.data = data
	return nil
}

var testNow = time.Date(2025, 5, 17, 12, 0, 0, 0, time.Local)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s := New(nil, zerolog.Nop())
	s.now = func() time.Time { return testNow }
	return s
}

func TestNewSeedsWhenNoSnapshot(t *testing.T) {
	s := New(&memPersister{}, zerolog.Nop())

	state := s.State()
	assert.Len(t, state.Users, 4)
	assert.Len(t, state.Patients, 3)
	assert.Equal(t, models.ThemeClinical, state.SystemConfig.Theme)
	assert.True(t, state.SystemConfig.SeniorMode)
}

func TestNewRestoresSnapshot(t *testing.T) {
	seed := SeedState(testNow)
	seed.SystemConfig.VirtualDoctorActive = true
	seed.Patients = seed.Patients[:1]
	raw, err := json.Marshal(seed)
	assert.NoError(t, err)

	s := New(&memPersister{data: raw}, zerolog.Nop())

	state := s.State()
	assert.True(t, state.SystemConfig.VirtualDoctorActive)
	assert.Len(t, state.Patients, 1)
}

func TestNewFallsBackOnCorruptSnapshot(t *testing.T) {
	s := New(&memPersister{data: []byte("{not json")}, zerolog.Nop())

	state := s.State()
	assert.Len(t, state.Users, 4, "corrupt snapshot should fall back to seed")
}

func TestMutationsPersistSnapshot(t *testing.T) {
	p := &memPersister{}
	s := New(p, zerolog.Nop())

	s.AddNotification("test", "u1")

	assert.Equal(t, 1, p.saves)
	var persisted models.State
	assert.NoError(t, json.Unmarshal(p.data, &persisted))
	assert.Equal(t, "test", persisted.Notifications[0].Message)
}

func TestPersistFailureDoesNotRollBack(t *testing.T) {
	p := &memPersister{failSave: true}
	s := New(p, zerolog.Nop())

	s.AddNotification("still applied", "u1")

	state := s.State()
	assert.Equal(t, "still applied", state.Notifications[0].Message)
}

func TestSubscribersNotifiedInOrder(t *testing.T) {
	s := newTestStore(t)

	var order []string
	s.Subscribe(func(models.State) { order = append(order, "first") })
	unsub := s.Subscribe(func(models.State) { order = append(order, "second") })

	s.AddNotification("hello", "u1")
	assert.Equal(t, []string{"first", "second"}, order)

	unsub()
	s.AddNotification("again", "u1")
	assert.Equal(t, []string{"first", "second", "first"}, order)
}

func TestSubscriberSeesCommittedState(t *testing.T) {
	s := newTestStore(t)

	var seen models.State
	s.Subscribe(func(st models.State) { seen = st })

	s.AddNotification("committed", "u1")
	assert.Equal(t, "committed", seen.Notifications[0].Message)
}

func TestNoOpMutationDoesNotNotify(t *testing.T) {
	s := newTestStore(t)

	calls := 0
	s.Subscribe(func(models.State) { calls++ })

	assert.Nil(t, s.ScheduleAppointment("nobody by this name", "10:00"))
	assert.Zero(t, calls)
}

func TestFindPatientFuzzyMatch(t *testing.T) {
	s := newTestStore(t)

	p, found := s.FindPatient("margaret")
	assert.True(t, found)
	assert.Equal(t, "p1", p.ID)

	p, found = s.FindPatient("PENHALIGON")
	assert.True(t, found)
	assert.Equal(t, "p2", p.ID)

	_, found = s.FindPatient("")
	assert.False(t, found)

	_, found = s.FindPatient("zz")
	assert.False(t, found)
}

func TestAddNotificationDefaultsToCoordinationDesk(t *testing.T) {
	s := newTestStore(t)

	s.AddNotification("desk message", "")

	state := s.State()
	assert.Equal(t, "u1", state.Notifications[0].UserID)
	assert.Equal(t, models.NotificationUnread, state.Notifications[0].Status)
}

func TestNotificationsNewestFirst(t *testing.T) {
	s := newTestStore(t)

	s.AddNotification("older", "u1")
	s.AddNotification("newer", "u1")

	state := s.State()
	assert.Equal(t, "newer", state.Notifications[0].Message)
	assert.Equal(t, "older", state.Notifications[1].Message)
}

func TestMarkNotificationRead(t *testing.T) {
	s := newTestStore(t)

	assert.True(t, s.MarkNotificationRead("n-init"))
	state := s.State()
	for _, n := range state.Notifications {
		if n.ID == "n-init" {
			assert.Equal(t, models.NotificationRead, n.Status)
		}
	}

	assert.False(t, s.MarkNotificationRead("n-missing"))
}

func TestSendMessageAppendsChronologically(t *testing.T) {
	s := newTestStore(t)

	s.SendMessage("u2", "u1", "first")
	s.SendMessage("u1", "u2", "second")

	state := s.State()
	assert.Len(t, state.Messages, 2)
	assert.Equal(t, "first", state.Messages[0].Text)
	assert.Equal(t, "second", state.Messages[1].Text)
}

func TestToggleVirtualDoctor(t *testing.T) {
	s := newTestStore(t)

	s.ToggleVirtualDoctor(true)
	state := s.State()
	assert.True(t, state.SystemConfig.VirtualDoctorActive)
	assert.Equal(t, "VIRTUAL DOCTOR MODE ENGAGED", state.Notifications[0].Message)

	s.ToggleVirtualDoctor(false)
	state = s.State()
	assert.False(t, state.SystemConfig.VirtualDoctorActive)
	assert.Equal(t, "BEACON ASSISTANT ENGAGED", state.Notifications[0].Message)
}

func TestStateIsCopyOnWrite(t *testing.T) {
	s := newTestStore(t)

	before := s.State()
	appointmentsBefore := len(before.Appointments)

	s.ScheduleAppointment("Evelyn", "09:00")

	// The snapshot taken before the mutation must be unchanged.
	assert.Len(t, before.Appointments, appointmentsBefore)
	assert.Len(t, s.State().Appointments, appointmentsBefore+1)
}
