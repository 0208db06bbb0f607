// Package store keeps one authoritative client-side copy per resource kind
// and mediates all CRUD against the remote API.
//
// Reconciliation is server-wins: every successful mutation replaces the
// entire local collection with the payload the server returns. Concurrent
// refreshes and mutations are not ordered against each other; whichever
// response is applied last wins wholesale. That admits the known race where
// an older refresh response can briefly revert a newer mutation.
package store

import "sync"

// collection is the shared cache + failure flag underneath every store.
type collection[T any] struct {
	mu         sync.Mutex
	items      []T
	connFailed bool
	editErrs   []string
}

// Items returns a copy of the current collection.
func (c *collection[T]) Items() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// ConnectionFailed reports whether the last refresh failed at the transport
// level. Rendered as a persistent banner, not a dismissible alert.
func (c *collection[T]) ConnectionFailed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.connFailed
}

// PendingErrors returns the field or mutation messages of the in-progress
// edit, if any.
func (c *collection[T]) PendingErrors() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, len(c.editErrs))
	copy(out, c.editErrs)
	return out
}

// CancelPendingEdit drops any outstanding error state without contacting the
// server. Used when the user abandons an in-progress add or edit.
func (c *collection[T]) CancelPendingEdit() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.editErrs = nil
}

// Clear empties the collection without flagging a failure, e.g. on logout.
func (c *collection[T]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
	c.editErrs = nil
	c.connFailed = false
}

func (c *collection[T]) replace(items []T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = items
	c.connFailed = false
}

func (c *collection[T]) replaceAfterMutation(items []T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = items
	c.editErrs = nil
}

func (c *collection[T]) failRefresh() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
	c.connFailed = true
}

func (c *collection[T]) setEditErrors(msgs []string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.editErrs = msgs
}
