package track

import "io"

// Handle is an opaque reference to a tracked obligation.
// Handle 0 is reserved and always invalid.
type Handle uint32

// Event types for obligation lifecycle notifications.
type EventType uint8

const (
	EventRegistered EventType = iota
	EventDropped
	EventLeaked
)

// Event describes an obligation lifecycle event. For EventLeaked the
// obligation was still live when the table shut down and was force-closed.
type Event struct {
	Closer io.Closer
	Handle Handle
	Kind   uint32
	Type   EventType
}

// Observer receives notifications about obligation lifecycle events.
type Observer interface {
	OnTrackEvent(Event)
}
