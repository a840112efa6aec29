package resguard

import "testing"

func TestGuard_RunsOnScopeExit(t *testing.T) {
	counter := 0

	func() {
		g := New(func() { counter++ })
		defer g.Close()
	}()

	if counter != 1 {
		t.Fatalf("Expected action to run exactly once, ran %d times", counter)
	}
}

func TestGuard_ReleaseSuppressesAction(t *testing.T) {
	counter := 0

	func() {
		g := New(func() { counter++ })
		defer g.Close()
		g.Release()
	}()

	if counter != 0 {
		t.Fatalf("Expected action to be suppressed, ran %d times", counter)
	}
}

func TestGuard_ReleaseIdempotent(t *testing.T) {
	counter := 0

	g := New(func() { counter++ })
	g.Release()
	g.Release()
	g.Close()

	if counter != 0 {
		t.Fatalf("Expected no runs, got %d", counter)
	}
}

func TestGuard_CloseIdempotent(t *testing.T) {
	counter := 0

	g := New(func() { counter++ })
	g.Close()
	g.Close()

	if counter != 1 {
		t.Fatalf("Expected exactly one run, got %d", counter)
	}
}

func TestGuard_NilAction(t *testing.T) {
	g := New(nil)
	g.Close() // must not panic
}

func TestGuard_Move(t *testing.T) {
	counter := 0

	a := New(func() { counter++ })
	b := a.Move()

	a.Close()
	if counter != 0 {
		t.Fatalf("Moved-from guard must not run the action, got %d", counter)
	}

	b.Close()
	if counter != 1 {
		t.Fatalf("Expected exactly one run from moved-to guard, got %d", counter)
	}
}

func TestGuard_MoveChainRunsOnce(t *testing.T) {
	counter := 0

	a := New(func() { counter++ })
	b := a.Move()
	c := b.Move()

	a.Close()
	b.Close()
	c.Close()
	c.Close()

	if counter != 1 {
		t.Fatalf("Expected exactly one run across the move chain, got %d", counter)
	}
}

func TestGuard_AdoptRunsPendingAction(t *testing.T) {
	first, second := 0, 0

	a := New(func() { first++ })
	b := New(func() { second++ })
	b.Adopt(a)

	// b's own obligation fires at the moment of adoption.
	if second != 1 {
		t.Fatalf("Expected pending action to run at adoption, ran %d times", second)
	}
	if first != 0 {
		t.Fatalf("Adopted action must not run yet, ran %d times", first)
	}

	a.Close()
	b.Close()
	if first != 1 {
		t.Fatalf("Expected adopted action to run exactly once, ran %d times", first)
	}
	if second != 1 {
		t.Fatalf("Expected replaced action to stay at one run, got %d", second)
	}
}

func TestGuard_AdoptIntoReleased(t *testing.T) {
	first, second := 0, 0

	a := New(func() { first++ })
	b := New(func() { second++ })
	b.Release()
	b.Adopt(a)

	if second != 0 {
		t.Fatalf("Released action must not run at adoption, ran %d times", second)
	}

	b.Close()
	if first != 1 {
		t.Fatalf("Expected adopted action to run, ran %d times", first)
	}
}

func TestGuard_AdoptSelf(t *testing.T) {
	counter := 0

	g := New(func() { counter++ })
	g.Adopt(g)

	if counter != 0 {
		t.Fatalf("Self-adoption must not fire the action, got %d", counter)
	}
	g.Close()
	if counter != 1 {
		t.Fatalf("Expected one run, got %d", counter)
	}
}

func TestGuard_PanickingActionRunsOnce(t *testing.T) {
	counter := 0
	g := New(func() {
		counter++
		panic("cleanup failed")
	})

	func() {
		defer func() {
			if recover() == nil {
				t.Fatal("Expected panic to propagate")
			}
		}()
		g.Close()
	}()

	// The guard went inert before invoking, so the action cannot rerun.
	g.Close()
	if counter != 1 {
		t.Fatalf("Expected exactly one run, got %d", counter)
	}
}
