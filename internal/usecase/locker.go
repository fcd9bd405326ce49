package usecase

import "sync"

// sessionLocker hands out one mutex per session ID. Entries are dropped once
// nobody holds or waits for them.
type sessionLocker struct {
	mu    sync.Mutex
	locks map[string]*sessionLock
}

type sessionLock struct {
	mu   sync.Mutex
	refs int
}

func newSessionLocker() *sessionLocker {
	return &sessionLocker{
		locks: make(map[string]*sessionLock),
	}
}

// Lock blocks until the caller owns id and returns the matching unlock func.
func (that *sessionLocker) Lock(id string) func() {
	that.mu.Lock()
	lock, ok := that.locks[id]
	if !ok {
		lock = &sessionLock{}
		that.locks[id] = lock
	}
	lock.refs++
	that.mu.Unlock()

	lock.mu.Lock()

	return func() {
		lock.mu.Unlock()

		that.mu.Lock()
		lock.refs--
		if lock.refs == 0 {
			delete(that.locks, id)
		}
		that.mu.Unlock()
	}
}

func (that *sessionLocker) size() int {
	that.mu.Lock()
	defer that.mu.Unlock()

	return len(that.locks)
}
