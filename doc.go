// Package resguard provides scoped resource-release guards.
//
// A guard owns exactly one cleanup obligation and discharges it exactly once
// when the guard is closed, unless the obligation was disarmed with Release
// or transferred away with Move or Adopt. Go has no destructors, so the
// "scope exit" of the guard is expressed by deferring Close at the point of
// acquisition:
//
//	fd, err := unix.Open(path, unix.O_RDONLY, 0)
//	if err != nil {
//	    return err
//	}
//	g := resguard.NewFD(fd)
//	defer g.Close()
//
//	// ... use g.Get() freely; the descriptor is closed on every exit path
//
// # Guard Types
//
// Two guard types cover the two resource shapes:
//
//	FD    - owns an operating-system file descriptor, closes it on scope exit
//	Guard - owns an arbitrary zero-argument deferred action
//
// # Ownership
//
// Every guard has a single exclusive owner. Copying a guard by value would
// duplicate the obligation, so guards must be handled through their pointer;
// a vet check flags accidental copies. Ownership moves between guards
// explicitly:
//
//	a := resguard.NewFD(fd)
//	b := a.Move()      // b now owns fd, a is inert
//	c.Adopt(b)         // c closes its own descriptor first, then takes b's
//
// A moved-from guard is inert: it closes nothing, and FD.Get reports NoFD.
//
// # Disarming
//
// Release disarms a guard without performing the cleanup. It is idempotent.
// The usual shape is commit/rollback: arm the guard, do fallible work, and
// release only once the resource has been handed off:
//
//	g := resguard.New(func() { cache.Delete(key) })
//	defer g.Close()
//
//	if err := publish(key); err != nil {
//	    return err // scope exit undoes the cache insert
//	}
//	g.Release() // committed, cleanup disarmed
//
// # Failure Semantics
//
// Close never returns an error. A failing close syscall is deliberately
// swallowed: there is no safe error channel on a cleanup path, and callers
// that need to observe the failure should close the descriptor themselves
// and then call Release. Swallowed failures are reported through the logger
// installed with SetLogger (a no-op logger by default).
//
// # Supporting Packages
//
//	resguard/       Core FD and Guard types
//	├── track/      Handle table auditing live cleanup obligations
//	└── pool/       LIFO close pool for batches of io.Closers
//
// Guards implement io.Closer, so they compose with both.
package resguard
