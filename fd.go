package resguard

import "go.uber.org/zap"

// NoFD marks a guard that holds no descriptor. Constructing a guard with
// NoFD yields an empty guard whose Close is a no-op.
const NoFD = -1

// osClose is the platform close operation. Tests swap it out to observe
// close calls without touching real descriptors.
var osClose = closeFD

// FD owns a single operating-system file descriptor and closes it exactly
// once when the guard is closed, unless the guard was released or its
// ownership was moved away first.
//
// An FD is a scoped local owner, not a shared object: it must not be used
// from more than one goroutine at a time. It must also not be copied by
// value; vet flags copies.
type FD struct {
	noCopy   noCopy
	fd       int
	released bool
}

// NewFD takes ownership of fd. The value is not validated: any non-negative
// descriptor is eligible for closing whether or not it is actually open, and
// only NoFD itself suppresses the close.
func NewFD(fd int) *FD {
	return &FD{fd: fd}
}

// Get returns the owned descriptor without transferring ownership.
// A moved-from or empty guard reports NoFD.
func (g *FD) Get() int {
	return g.fd
}

// Release disarms the guard so that Close performs no close. It is
// idempotent, and it does not close the descriptor: callers that need to
// observe the close error should close the descriptor themselves and then
// call Release.
func (g *FD) Release() {
	g.released = true
}

// Move transfers ownership to a fresh guard and returns it. Afterward g is
// inert: it holds NoFD and closes nothing.
func (g *FD) Move() *FD {
	moved := &FD{fd: g.fd, released: g.released}
	g.fd = NoFD
	g.released = true
	return moved
}

// Adopt transfers ownership from src into g. If g is still armed with a
// live descriptor, that descriptor is closed first so the pending
// obligation is not silently dropped. Afterward src is inert.
// Self-adoption is a no-op.
func (g *FD) Adopt(src *FD) {
	if g == src {
		return
	}
	g.closeOwned()
	g.fd = src.fd
	g.released = src.released
	src.fd = NoFD
	src.released = true
}

// Close closes the owned descriptor if the guard is still armed, then marks
// the guard inert. It always returns nil: a failing close syscall is
// swallowed, reported only through the package logger. Close is idempotent
// and satisfies io.Closer.
func (g *FD) Close() error {
	g.closeOwned()
	return nil
}

func (g *FD) closeOwned() {
	if !g.released && g.fd != NoFD {
		if err := osClose(g.fd); err != nil {
			Logger().Debug("descriptor close failed",
				zap.Int("fd", g.fd),
				zap.Error(err))
		}
	}
	g.fd = NoFD
	g.released = true
}

// noCopy triggers vet's copylocks check when embedded in a struct that is
// copied by value.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
