// Package pool collects io.Closer values and releases them in one call.
//
// Closers are closed in reverse registration order, so dependent resources
// registered later (a TLS session over a TCP connection, a guard over a
// descriptor) are torn down before what they depend on. The zero value is
// ready to use:
//
//	var p pool.Pool
//	p.Add(conn)
//	p.Add(resguard.NewFD(fd))
//	p.AddFunc(func() error { return tmp.Remove() })
//	defer p.Close()
//
// Unlike the close of an individual guard, Pool.Close reports failures: the
// returned error aggregates every close error that occurred.
package pool

import (
	"io"
	"sync"

	"go.uber.org/multierr"
)

// CloserFunc adapts a plain function to io.Closer.
type CloserFunc func() error

// Close implements io.Closer.
func (f CloserFunc) Close() error {
	return f()
}

// Pool accumulates io.Closers and closes them LIFO in a single operation.
// Safe for concurrent use.
type Pool struct {
	closers []io.Closer
	mu      sync.Mutex
}

// Add appends a closer to the pool.
func (p *Pool) Add(c io.Closer) {
	p.mu.Lock()
	p.closers = append(p.closers, c)
	p.mu.Unlock()
}

// AddFunc appends a plain close function to the pool.
func (p *Pool) AddFunc(fn func() error) {
	p.Add(CloserFunc(fn))
}

// Len returns the number of pending closers.
func (p *Pool) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.closers)
}

// Close closes every pending closer in reverse registration order and
// returns the aggregated errors. The pool is emptied and may be reused.
func (p *Pool) Close() error {
	p.mu.Lock()
	closers := p.closers
	p.closers = nil
	p.mu.Unlock()

	var errs error
	for i := len(closers) - 1; i >= 0; i-- {
		errs = multierr.Append(errs, closers[i].Close())
	}
	return errs
}
