package meeting

import (
	"sort"
	"sync"

	"github.com/google/uuid"
)

// participantLocks serializes the check-then-commit critical section per
// participant. Two concurrent schedule calls for the same graduate or the
// same company take the same mutex, so both cannot pass the conflict check
// before either commits. Locks are acquired in sorted key order to avoid
// deadlock when a meeting involves both a graduate and a company.
type participantLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newParticipantLocks() *participantLocks {
	return &participantLocks{locks: make(map[string]*sync.Mutex)}
}

func (l *participantLocks) get(key string) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()

	m, ok := l.locks[key]
	if !ok {
		m = &sync.Mutex{}
		l.locks[key] = m
	}
	return m
}

// acquire locks every participant key and returns the release function.
func (l *participantLocks) acquire(graduateID, companyID *uuid.UUID) func() {
	keys := make([]string, 0, 2)
	if graduateID != nil {
		keys = append(keys, "graduate:"+graduateID.String())
	}
	if companyID != nil {
		keys = append(keys, "company:"+companyID.String())
	}
	sort.Strings(keys)

	held := make([]*sync.Mutex, 0, len(keys))
	for _, key := range keys {
		m := l.get(key)
		m.Lock()
		held = append(held, m)
	}

	return func() {
		for i := len(held) - 1; i >= 0; i-- {
			held[i].Unlock()
		}
	}
}
