// Package store provides the persistent, per-browser preference storage.
package store

import "errors"

// ErrNotFound is returned when a key is not set for the scope.
var ErrNotFound = errors.New("key not found")

// RWLocker is a lock used to serialize store access. sqlite uses sync.RWMutex, postgres needs none.
type RWLocker interface {
	Lock()
	Unlock()
	RLock()
	RUnlock()
}

type noopLocker struct{}

func (noopLocker) Lock()    {}
func (noopLocker) Unlock()  {}
func (noopLocker) RLock()   {}
func (noopLocker) RUnlock() {}
