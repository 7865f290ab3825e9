package engine

import (
	"testing"
	"time"
)

func TestDebouncerFiresOnceAfterQuiet(t *testing.T) {
	d := NewDebouncer(200 * time.Millisecond)
	t0 := time.Unix(1000, 0)

	d.Push(ResizeIntent{800, 600}, t0)
	if _, ok := d.Poll(t0.Add(199 * time.Millisecond)); ok {
		t.Fatal("fired before the deadline")
	}
	r, ok := d.Poll(t0.Add(200 * time.Millisecond))
	if !ok || r != (ResizeIntent{800, 600}) {
		t.Fatalf("Poll = %v, %v; want {800 600}, true", r, ok)
	}
	if _, ok := d.Poll(t0.Add(time.Second)); ok {
		t.Error("fired twice")
	}
	if d.Pending() {
		t.Error("still pending after firing")
	}
}

func TestDebouncerSupersedes(t *testing.T) {
	d := NewDebouncer(200 * time.Millisecond)
	t0 := time.Unix(0, 0)

	d.Push(ResizeIntent{100, 100}, t0)
	d.Push(ResizeIntent{200, 200}, t0.Add(150*time.Millisecond))
	d.Push(ResizeIntent{300, 300}, t0.Add(300*time.Millisecond))

	// The first deadline (200ms) and second (350ms) were both superseded.
	if _, ok := d.Poll(t0.Add(350 * time.Millisecond)); ok {
		t.Fatal("superseded resize fired")
	}
	r, ok := d.Poll(t0.Add(500 * time.Millisecond))
	if !ok || r != (ResizeIntent{300, 300}) {
		t.Errorf("Poll = %v, %v; want {300 300}, true", r, ok)
	}
}

func TestDebouncerNegativeDelay(t *testing.T) {
	d := NewDebouncer(-time.Second)
	now := time.Unix(5, 0)
	d.Push(ResizeIntent{1, 2}, now)
	if _, ok := d.Poll(now); !ok {
		t.Error("zero delay should fire immediately")
	}
}
