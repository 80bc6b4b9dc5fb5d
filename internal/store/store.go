package store

import (
	"encoding/json"
	"strings"
	"sync"
	"time"

	"beacon-care-server/internal/models"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Store is the single source of truth for all coordination state. Every
// mutation computes a full replacement snapshot from the current one,
// swaps it in atomically, persists it best-effort and then notifies
// subscribers synchronously in registration order. Callers never receive
// a hard error from a mutation: an unresolvable name, missing entity or
// violated precondition degrades to a no-op, because inputs often come
// from imprecise voice/NL extraction and must not crash a session.
type Store struct {
	mu      sync.Mutex
	state   *models.State
	subs    []subscriber
	persist Persister
	log     zerolog.Logger
	now     func() time.Time
}

type subscriber struct {
	id string
	fn func(models.State)
}

// New builds a store from the persisted snapshot if one is readable, or
// from the seed dataset otherwise. A nil persister keeps the store fully
// in-memory.
func New(p Persister, logger zerolog.Logger) *Store {
	s := &Store{
		persist: p,
		log:     logger,
		now:     time.Now,
	}

	state := SeedState(s.now())
	if p != nil {
		if raw, err := p.Load(); err != nil {
			logger.Warn().Err(err).Msg("snapshot load failed, using seed dataset")
		} else if len(raw) > 0 {
			var restored models.State
			if err := json.Unmarshal(raw, &restored); err != nil || len(restored.Users) == 0 {
				logger.Warn().Err(err).Msg("snapshot unreadable, using seed dataset")
			} else {
				state = restored
			}
		}
	}

	s.state = &state
	return s
}

// State returns the current snapshot. The snapshot is copy-on-write:
// collections inside it are never mutated in place, so holding on to the
// returned value is safe.
func (s *Store) State() models.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.state
}

// Subscribe registers a callback invoked synchronously after every
// committed mutation, in registration order. The returned function
// removes the subscription.
func (s *Store) Subscribe(fn func(models.State)) func() {
	id := uuid.NewString()

	s.mu.Lock()
	s.subs = append(s.subs, subscriber{id: id, fn: fn})
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

// update runs apply against the current snapshot and commits its result.
// apply returning false leaves the state untouched. Commit order is
// swap, persist, notify; persistence failures are logged and swallowed
// because the in-memory state is the system of record for the session.
func (s *Store) update(apply func(cur models.State) (models.State, bool)) bool {
	s.mu.Lock()
	next, ok := apply(*s.state)
	if !ok {
		s.mu.Unlock()
		return false
	}
	s.state = &next
	subs := make([]subscriber, len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	if s.persist != nil {
		raw, err := json.Marshal(next)
		if err == nil {
			err = s.persist.Save(raw)
		}
		if err != nil {
			s.log.Warn().Err(err).Msg("snapshot persist failed")
		}
	}

	for _, sub := range subs {
		sub.fn(next)
	}
	return true
}

// FindPatient resolves a patient by case-insensitive substring match,
// returning the first record in collection order. Misses are soft.
func (s *Store) FindPatient(name string) (models.Patient, bool) {
	return findPatient(s.State().Patients, name)
}

// FindUser resolves a user the same way FindPatient resolves a patient.
func (s *Store) FindUser(name string) (models.User, bool) {
	return findUser(s.State().Users, name)
}

func findPatient(patients []models.Patient, name string) (models.Patient, bool) {
	if name == "" {
		return models.Patient{}, false
	}
	needle := strings.ToLower(name)
	for _, p := range patients {
		if strings.Contains(strings.ToLower(p.Name), needle) {
			return p, true
		}
	}
	return models.Patient{}, false
}

func findUser(users []models.User, name string) (models.User, bool) {
	if name == "" {
		return models.User{}, false
	}
	needle := strings.ToLower(name)
	for _, u := range users {
		if strings.Contains(strings.ToLower(u.Name), needle) {
			return u, true
		}
	}
	return models.User{}, false
}

func newID(prefix string) string {
	return prefix + "-" + uuid.NewString()
}
