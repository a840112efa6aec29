// Package track provides a handle table for auditing live cleanup
// obligations.
//
// Guards discharge their obligation at scope exit, but a long-lived host
// often also wants a global answer to "what is still open right now, and
// can I close all of it at shutdown". The Table maps integer handles to
// io.Closer values so obligations can be inspected, dropped early, or
// force-closed in bulk.
//
// # Handle Table
//
//	table := track.NewTable()
//
//	// Register an obligation, get a handle
//	h, err := table.Register(kindSocket, conn)
//
//	// Drop it early: removes the entry and closes the obligation
//	ok, err := table.Drop(h)
//
//	// At shutdown: force-close everything still live, newest first
//	err = table.Close()
//
// Kinds are caller-chosen discriminators; GetKinded refuses a handle
// registered under a different kind:
//
//	const (
//	    kindFile   = 1
//	    kindSocket = 2
//	)
//
//	c, ok := table.GetKinded(h, kindSocket) // ok
//	c, ok = table.GetKinded(h, kindFile)    // !ok
//
// # Observers
//
// Subscribe observers to follow the lifecycle. LogObserver wires events to
// a zap logger; leaks surface at Warn:
//
//	table.Subscribe(track.LogObserver(logger))
//
// # Guards
//
// The guards in the root package implement io.Closer, so a guard can be
// registered directly. Pair Register with the guard's Release to hand the
// obligation over to the table rather than hold it twice.
package track
