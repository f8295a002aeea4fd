package core

import (
	"testing"
	"time"
)

func TestPacerDue(t *testing.T) {
	start := time.Unix(0, 0)
	p := NewPacer(start)
	delay := 60 * time.Millisecond

	if p.Due(start.Add(59*time.Millisecond), delay) {
		t.Fatal("tick must not be due before the delay elapses")
	}
	if !p.Due(start.Add(60*time.Millisecond), delay) {
		t.Fatal("tick must be due once the delay elapses")
	}
	if p.Last() != start.Add(60*time.Millisecond) {
		t.Fatal("a due tick must record now as the last tick")
	}
	if p.Due(start.Add(100*time.Millisecond), delay) {
		t.Fatal("delay is measured from the last tick")
	}

	p.Reset(start.Add(500 * time.Millisecond))
	if p.Due(start.Add(520*time.Millisecond), delay) {
		t.Fatal("Reset must move the last tick")
	}
}
