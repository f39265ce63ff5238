package usecase

import (
	"sync"

	"github.com/google/uuid"
)

// tripLocks serializes mutating operations per trip ID. Operations on
// different trips proceed in parallel with no coordination between them.
type tripLocks struct {
	mutexes sync.Map
}

func newTripLocks() *tripLocks {
	return &tripLocks{}
}

// Lock acquires the mutex for the given trip and returns its unlock
// function. Mutexes are never removed from the map, so two goroutines can
// never end up serialized on different mutexes for the same trip.
func (l *tripLocks) Lock(tripID uuid.UUID) func() {
	v, _ := l.mutexes.LoadOrStore(tripID, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}
