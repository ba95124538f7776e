// Package memo provides a single-flight lazy-initialization cell.
//
// A Cell coalesces concurrent initialization attempts: callers that
// arrive while a load is in flight wait for it and receive the same
// value or the same error. A successful load is cached for the life
// of the process; a failed load is discarded so the next caller
// retries from scratch.
package memo

import "sync"

type call[T any] struct {
	done chan struct{}
	val  T
	err  error
}

// Cell holds a lazily computed value. The zero value is ready to use.
type Cell[T any] struct {
	mu    sync.Mutex
	ready bool
	val   T
	cur   *call[T]
}

// Get returns the cached value, or runs fn to compute it. Concurrent
// callers during a load share the in-flight attempt's outcome.
func (c *Cell[T]) Get(fn func() (T, error)) (T, error) {
	c.mu.Lock()
	if c.ready {
		v := c.val
		c.mu.Unlock()
		return v, nil
	}
	if c.cur != nil {
		cl := c.cur
		c.mu.Unlock()
		<-cl.done
		return cl.val, cl.err
	}
	cl := &call[T]{done: make(chan struct{})}
	c.cur = cl
	c.mu.Unlock()

	cl.val, cl.err = fn()

	c.mu.Lock()
	if cl.err == nil {
		c.ready = true
		c.val = cl.val
	}
	// On failure the cell goes back to empty so a later Get retries.
	c.cur = nil
	c.mu.Unlock()
	close(cl.done)
	return cl.val, cl.err
}

// Ready reports whether a value has been cached.
func (c *Cell[T]) Ready() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ready
}
