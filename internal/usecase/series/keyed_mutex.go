package series

import (
	"sync"

	"github.com/simaogato/carteira-backend/internal/domain"
)

// keyedMutex hands out one mutex per asset. Entries are dropped once no goroutine
// holds or waits for them, so the map only grows with concurrent activity.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[domain.SeriesKey]*refMutex
}

type refMutex struct {
	sync.Mutex
	refs int
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{locks: make(map[domain.SeriesKey]*refMutex)}
}

// Lock blocks until the key is held and returns its unlock function
func (k *keyedMutex) Lock(key domain.SeriesKey) func() {
	k.mu.Lock()
	m, ok := k.locks[key]
	if !ok {
		m = &refMutex{}
		k.locks[key] = m
	}
	m.refs++
	k.mu.Unlock()

	m.Lock()

	return func() {
		m.Unlock()

		k.mu.Lock()
		m.refs--
		if m.refs == 0 {
			delete(k.locks, key)
		}
		k.mu.Unlock()
	}
}

func (k *keyedMutex) size() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.locks)
}
