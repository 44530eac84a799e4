package registry

import (
	"sync"
	"testing"

	"github.com/vovakirdan/tui-life/internal/core"
)

func TestRegisterLookup(t *testing.T) {
	Register(Pattern{
		Name:   "test-block",
		Points: []core.Point{core.P(0, 0), core.P(1, 0), core.P(0, 1), core.P(1, 1)},
	})

	p, ok := Lookup("test-block")
	if !ok {
		t.Fatal("Lookup() should find a registered pattern")
	}
	if p.Title != "test-block" {
		t.Errorf("Title should default to the name, got %q", p.Title)
	}
	if len(p.Points) != 4 {
		t.Fatalf("expected 4 points, got %d", len(p.Points))
	}
	if b := p.Bounds(); b.W != 2 || b.H != 2 {
		t.Errorf("Bounds() = %+v, expected 2x2", b)
	}

	// Mutating a looked-up copy must not change the table.
	p.Points[0] = core.P(9, 9)
	again, _ := Lookup("test-block")
	if again.Points[0] != core.P(0, 0) {
		t.Error("Lookup() should return an independent copy")
	}
}

func TestLookupUnknown(t *testing.T) {
	if _, ok := Lookup("no-such-pattern"); ok {
		t.Error("Lookup() of an unknown name should report false")
	}
	if Exists("no-such-pattern") {
		t.Error("Exists() of an unknown name should be false")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register(Pattern{Name: "test-dup", Points: []core.Point{core.P(0, 0)}})

	defer func() {
		if recover() == nil {
			t.Error("registering a duplicate name should panic")
		}
	}()
	Register(Pattern{Name: "test-dup"})
}

func TestTryRegister(t *testing.T) {
	if err := TryRegister(Pattern{Name: ""}); err == nil {
		t.Error("empty name should be rejected")
	}
	if err := TryRegister(Pattern{Name: "test-try", Points: []core.Point{core.P(0, 0)}}); err != nil {
		t.Fatalf("TryRegister() failed: %v", err)
	}
	if err := TryRegister(Pattern{Name: "test-try"}); err == nil {
		t.Error("duplicate name should be rejected")
	}
}

func TestListSorted(t *testing.T) {
	Register(Pattern{Name: "test-zz", Points: []core.Point{core.P(0, 0)}})
	Register(Pattern{Name: "test-aa", Points: []core.Point{core.P(0, 0)}})

	names := Names()
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Fatalf("Names() not sorted: %v", names)
		}
	}
}

func TestTryRegisterConcurrent(t *testing.T) {
	const workers = 16

	var (
		wg       sync.WaitGroup
		countMu  sync.Mutex
		accepted int
	)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			// A race between the duplicate check and the insert would panic here.
			if err := TryRegister(Pattern{Name: "test-race", Points: []core.Point{core.P(0, 0)}}); err == nil {
				countMu.Lock()
				accepted++
				countMu.Unlock()
			}
		}()
	}
	wg.Wait()

	if accepted != 1 {
		t.Errorf("%d registrations accepted, expected exactly 1", accepted)
	}
}
