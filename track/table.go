package track

import (
	"errors"
	"io"
	"sync"

	"go.uber.org/multierr"
)

// ErrClosed is returned by Register once the table has shut down.
var ErrClosed = errors.New("track: table closed")

type entry struct {
	closer io.Closer
	kind   uint32
	live   bool
}

// Table maps integer handles to live cleanup obligations. It lets a host
// audit what is still open, drop individual obligations early, and
// force-close everything at shutdown.
//
// Unlike the guards in the root package, a Table is safe for concurrent
// use: it is meant to be shared by the components whose obligations it
// tracks.
type Table struct {
	entries   []entry
	freeList  []Handle
	observers []Observer
	mu        sync.RWMutex
	obsMu     sync.RWMutex
	closed    bool
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{
		entries:  make([]entry, 0, 64),
		freeList: make([]Handle, 0, 16),
	}
}

// Register stores an obligation under a caller-chosen kind and returns its
// handle. Handles of dropped obligations are recycled.
func (t *Table) Register(kind uint32, c io.Closer) (Handle, error) {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return 0, ErrClosed
	}

	e := entry{closer: c, kind: kind, live: true}

	var handle Handle
	if n := len(t.freeList); n > 0 {
		handle = t.freeList[n-1]
		t.freeList = t.freeList[:n-1]
		t.entries[handle-1] = e
	} else {
		t.entries = append(t.entries, e)
		handle = Handle(len(t.entries))
	}
	t.mu.Unlock()

	t.notify(Event{Type: EventRegistered, Handle: handle, Kind: kind, Closer: c})
	return handle, nil
}

// Get retrieves an obligation by handle.
func (t *Table) Get(handle Handle) (io.Closer, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	e, ok := t.lookup(handle)
	if !ok {
		return nil, false
	}
	return e.closer, true
}

// Kind returns the kind an obligation was registered under.
func (t *Table) Kind(handle Handle) (uint32, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	e, ok := t.lookup(handle)
	if !ok {
		return 0, false
	}
	return e.kind, true
}

// GetKinded retrieves an obligation only if it was registered under the
// expected kind.
func (t *Table) GetKinded(handle Handle, kind uint32) (io.Closer, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	e, ok := t.lookup(handle)
	if !ok || e.kind != kind {
		return nil, false
	}
	return e.closer, true
}

// Drop removes an obligation and closes it. It reports whether the handle
// was live, along with the close error if the obligation failed to close.
func (t *Table) Drop(handle Handle) (bool, error) {
	t.mu.Lock()
	e, ok := t.lookup(handle)
	if !ok {
		t.mu.Unlock()
		return false, nil
	}

	closer, kind := e.closer, e.kind
	t.clear(handle)
	t.mu.Unlock()

	err := closer.Close()
	t.notify(Event{Type: EventDropped, Handle: handle, Kind: kind, Closer: closer})
	return true, err
}

// Len returns the number of live obligations.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	count := 0
	for _, e := range t.entries {
		if e.live {
			count++
		}
	}
	return count
}

// Each iterates over all live obligations until fn returns false.
func (t *Table) Each(fn func(Handle, uint32, io.Closer) bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	for i, e := range t.entries {
		if e.live {
			if !fn(Handle(i+1), e.kind, e.closer) {
				break
			}
		}
	}
}

// Clear drops every live obligation, newest first, and returns the joined
// close errors. The table stays usable afterward.
func (t *Table) Clear() error {
	var errs error
	for _, h := range t.liveHandles() {
		if _, err := t.Drop(h); err != nil {
			errs = multierr.Append(errs, err)
		}
	}
	return errs
}

// Close force-closes every live obligation, newest first, emitting an
// EventLeaked for each, and stops accepting registrations. The returned
// error joins all close failures. Closing twice is a no-op.
func (t *Table) Close() error {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return nil
	}
	t.closed = true

	type leak struct {
		closer io.Closer
		handle Handle
		kind   uint32
	}
	var leaks []leak
	for i := len(t.entries) - 1; i >= 0; i-- {
		if t.entries[i].live {
			leaks = append(leaks, leak{
				closer: t.entries[i].closer,
				handle: Handle(i + 1),
				kind:   t.entries[i].kind,
			})
		}
	}
	t.entries = nil
	t.freeList = nil
	t.mu.Unlock()

	var errs error
	for _, l := range leaks {
		errs = multierr.Append(errs, l.closer.Close())
		t.notify(Event{Type: EventLeaked, Handle: l.handle, Kind: l.kind, Closer: l.closer})
	}
	return errs
}

// Subscribe adds an observer for lifecycle events.
func (t *Table) Subscribe(o Observer) {
	t.obsMu.Lock()
	defer t.obsMu.Unlock()
	t.observers = append(t.observers, o)
}

// Unsubscribe removes an observer.
func (t *Table) Unsubscribe(o Observer) {
	t.obsMu.Lock()
	defer t.obsMu.Unlock()
	for i, obs := range t.observers {
		if obs == o {
			t.observers = append(t.observers[:i], t.observers[i+1:]...)
			return
		}
	}
}

// lookup and clear require t.mu to be held.
func (t *Table) lookup(handle Handle) (*entry, bool) {
	if handle == 0 || int(handle) > len(t.entries) {
		return nil, false
	}
	e := &t.entries[handle-1]
	if !e.live {
		return nil, false
	}
	return e, true
}

func (t *Table) clear(handle Handle) {
	e := &t.entries[handle-1]
	e.live = false
	e.closer = nil
	t.freeList = append(t.freeList, handle)
}

func (t *Table) liveHandles() []Handle {
	t.mu.RLock()
	defer t.mu.RUnlock()

	var handles []Handle
	for i := len(t.entries) - 1; i >= 0; i-- {
		if t.entries[i].live {
			handles = append(handles, Handle(i+1))
		}
	}
	return handles
}

func (t *Table) notify(e Event) {
	t.obsMu.RLock()
	defer t.obsMu.RUnlock()
	for _, o := range t.observers {
		o.OnTrackEvent(e)
	}
}
