package resguard

// Guard owns a single zero-argument deferred action and runs it exactly
// once when the guard is closed, unless the guard was released or its
// ownership was moved away first. The action may capture whatever state it
// needs. A nil action yields an empty guard whose Close is a no-op.
//
// Like FD, a Guard is a scoped local owner: single goroutine, no copies.
type Guard struct {
	noCopy   noCopy
	action   func()
	released bool
}

// New takes ownership of a deferred action. The action must not panic: a
// panic during Close propagates to the caller and is not caught here.
func New(action func()) *Guard {
	return &Guard{action: action}
}

// Release disarms the guard so that Close does not run the action.
// Idempotent.
func (g *Guard) Release() {
	g.released = true
}

// Move transfers the action to a fresh guard and returns it. Afterward g is
// inert.
func (g *Guard) Move() *Guard {
	moved := &Guard{action: g.action, released: g.released}
	g.action = nil
	g.released = true
	return moved
}

// Adopt transfers the action from src into g. If g still holds a pending
// action, that action runs first so the obligation is not lost. Afterward
// src is inert. Self-adoption is a no-op.
func (g *Guard) Adopt(src *Guard) {
	if g == src {
		return
	}
	g.fire()
	g.action = src.action
	g.released = src.released
	src.action = nil
	src.released = true
}

// Close runs the action if the guard is still armed, then marks the guard
// inert. It always returns nil and is idempotent; across any chain of moves
// the action runs at most once. Satisfies io.Closer.
func (g *Guard) Close() error {
	g.fire()
	return nil
}

func (g *Guard) fire() {
	action := g.action
	armed := !g.released && action != nil
	// Mark inert before invoking so a panicking action cannot run twice.
	g.action = nil
	g.released = true
	if armed {
		action()
	}
}
