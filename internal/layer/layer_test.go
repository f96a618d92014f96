package layer

import (
	"testing"

	"github.com/layerkey/remapd/internal/event"
)

func TestLayerTransformInactiveReturnsNotOK(t *testing.T) {
	l := New("nav", map[event.EventCode][]ControlCode{
		event.Key(36): {KeyMapCC(108)}, // J -> DOWN
	}, false)

	_, ok := l.Transform(event.InputEvent{Code: event.Key(36), State: event.Down})
	if ok {
		t.Fatalf("expected inactive layer to report not-ok")
	}
}

func TestLayerTransformUnmappedCodeReturnsNotOK(t *testing.T) {
	l := New("nav", map[event.EventCode][]ControlCode{
		event.Key(36): {KeyMapCC(108)},
	}, true)

	_, ok := l.Transform(event.InputEvent{Code: event.Key(99), State: event.Down})
	if ok {
		t.Fatalf("expected unmapped code to report not-ok")
	}
}

func TestLayerTransformRewritesKeyMapPreservingTimeAndState(t *testing.T) {
	l := New("nav", map[event.EventCode][]ControlCode{
		event.Key(36): {KeyMapCC(108)}, // J -> DOWN
	}, true)

	in := event.InputEvent{Code: event.Key(36), State: event.Down}
	ccs, ok := l.Transform(in)
	if !ok {
		t.Fatalf("expected active mapped layer to report ok")
	}
	if len(ccs) != 1 || ccs[0].Kind != CCInputEvent {
		t.Fatalf("expected single InputEvent control code, got %v", ccs)
	}
	got := ccs[0].Event
	if got.Code != event.Key(108) {
		t.Errorf("Code = %v, want Key(108)", got.Code)
	}
	if got.State != event.Down {
		t.Errorf("State changed: got %v, want Down", got.State)
	}
	if got.Time != in.Time {
		t.Errorf("Time changed")
	}
}

func TestLayerTransformPassesNonKeyMapControlCodesThrough(t *testing.T) {
	tt := TapToggleCC(ByName("nav"), 33)
	l := New("base", map[event.EventCode][]ControlCode{
		event.Key(33): {tt},
	}, true)

	ccs, ok := l.Transform(event.InputEvent{Code: event.Key(33), State: event.Down})
	if !ok || len(ccs) != 1 {
		t.Fatalf("expected one control code, got %v ok=%v", ccs, ok)
	}
	if ccs[0] != tt {
		t.Errorf("TapToggle control code was altered: got %v, want %v", ccs[0], tt)
	}
}

func TestLayerActivateDeactivate(t *testing.T) {
	l := New("nav", nil, false)
	if l.Active() {
		t.Fatalf("expected layer to start inactive")
	}
	l.Activate()
	if !l.Active() {
		t.Errorf("Activate did not set active")
	}
	l.Deactivate()
	if l.Active() {
		t.Errorf("Deactivate did not clear active")
	}
}

func TestNewCopiesLookupDefensively(t *testing.T) {
	src := map[event.EventCode][]ControlCode{
		event.Key(1): {KeyMapCC(2)},
	}
	l := New("x", src, true)
	src[event.Key(1)][0] = KeyMapCC(99)

	ccs, ok := l.Transform(event.InputEvent{Code: event.Key(1)})
	if !ok {
		t.Fatalf("expected ok")
	}
	if ccs[0].Event.Code != event.Key(2) {
		t.Errorf("layer was affected by caller mutating its source map: got code %v", ccs[0].Event.Code)
	}
}
