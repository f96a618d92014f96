package event

import (
	"testing"
	"time"
)

func TestInputEventWithCodePreservesTimeAndState(t *testing.T) {
	now := time.Now()
	orig := InputEvent{Time: now, Code: Key(33), State: Down}
	rewritten := orig.WithCode(Key(108))

	if rewritten.Time != now {
		t.Errorf("Time changed: got %v, want %v", rewritten.Time, now)
	}
	if rewritten.State != Down {
		t.Errorf("State changed: got %v, want Down", rewritten.State)
	}
	if rewritten.Code != Key(108) {
		t.Errorf("Code = %v, want Key(108)", rewritten.Code)
	}
	if orig.Code != Key(33) {
		t.Errorf("WithCode mutated the receiver")
	}
}

func TestEventCodeEquality(t *testing.T) {
	a := Key(33)
	b := Key(33)
	c := Key(34)
	if a != b {
		t.Errorf("equal key codes compared unequal")
	}
	if a == c {
		t.Errorf("distinct key codes compared equal")
	}
	if Key(33) == Sync(SynReport) {
		t.Errorf("Key and Sync variants compared equal")
	}
}

func TestInputEventIsMapKeyable(t *testing.T) {
	m := map[InputEvent]bool{}
	e := InputEvent{Code: Key(33), State: Down}
	m[e] = true
	if !m[InputEvent{Code: Key(33), State: Down}] {
		t.Errorf("InputEvent did not behave as a stable map key")
	}
}
