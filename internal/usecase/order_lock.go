package usecase

import "sync"

// orderLocks serializes state transitions per order id. Orders are
// independent, so there is no cross-order locking; the DynamoDB conditional
// update remains the guard against writers in other processes.
type orderLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newOrderLocks() *orderLocks {
	return &orderLocks{locks: make(map[string]*sync.Mutex)}
}

func (l *orderLocks) acquire(orderID string) *sync.Mutex {
	l.mu.Lock()
	m, ok := l.locks[orderID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[orderID] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m
}
