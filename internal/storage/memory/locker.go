package memory

import (
	"context"
	"sync"
)

// Locker coordinates the volatile repositories. All in-memory
// repositories share one Locker so a product mutation and its ledger
// append observe a single critical section, mirroring the transaction
// boundary of the persistent backend.
type Locker struct {
	mu sync.RWMutex
}

type lockedKey struct{}

func NewLocker() *Locker {
	return &Locker{}
}

// InTx runs fn while holding the write lock. The context is marked so
// repository calls inside fn skip re-acquiring the lock.
func (l *Locker) InTx(ctx context.Context, fn func(ctx context.Context) error) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return fn(context.WithValue(ctx, lockedKey{}, true))
}

// RLock acquires the read lock unless ctx already holds the write
// lock. It returns the matching release function.
func (l *Locker) RLock(ctx context.Context) func() {
	if isLocked(ctx) {
		return func() {}
	}
	l.mu.RLock()
	return l.mu.RUnlock
}

// Lock acquires the write lock unless ctx already holds it.
func (l *Locker) Lock(ctx context.Context) func() {
	if isLocked(ctx) {
		return func() {}
	}
	l.mu.Lock()
	return l.mu.Unlock
}

func isLocked(ctx context.Context) bool {
	locked, ok := ctx.Value(lockedKey{}).(bool)
	return ok && locked
}
