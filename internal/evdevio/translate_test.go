//go:build linux

package evdevio

import (
	"testing"

	evdev "github.com/holoplot/go-evdev"

	"github.com/layerkey/remapd/internal/event"
)

func TestTranslateState(t *testing.T) {
	cases := []struct {
		value int32
		want  event.KeyState
	}{
		{0, event.Up},
		{1, event.Down},
		{2, event.Held},
		{3, event.UnknownState},
	}
	for _, c := range cases {
		if got := translateState(c.value); got != c.want {
			t.Errorf("translateState(%d) = %v, want %v", c.value, got, c.want)
		}
	}
}

func TestTranslateCodeKey(t *testing.T) {
	code, ok := translateCode(evdev.EV_KEY, evdev.EvCode(30))
	if !ok {
		t.Fatalf("translateCode() ok = false, want true")
	}
	if code.Kind != event.KindKey || code.Key != event.KeyCodeFromNumeric(30) {
		t.Errorf("translateCode() = %v, want key code 30", code)
	}
}

func TestTranslateCodeSyn(t *testing.T) {
	code, ok := translateCode(evdev.EV_SYN, evdev.SYN_REPORT)
	if !ok {
		t.Fatalf("translateCode() ok = false, want true")
	}
	if code.Kind != event.KindSync || code.Sync != event.SynReport {
		t.Errorf("translateCode() = %v, want SYN_REPORT", code)
	}
}

func TestTranslateCodeRejectsOtherTypes(t *testing.T) {
	if _, ok := translateCode(evdev.EV_REL, evdev.EvCode(0)); ok {
		t.Errorf("translateCode() ok = true for EV_REL, want false")
	}
}

func TestEncodeState(t *testing.T) {
	cases := []struct {
		state event.KeyState
		want  int32
		ok    bool
	}{
		{event.Up, 0, true},
		{event.Down, 1, true},
		{event.Held, 2, true},
		{event.UnknownState, 0, false},
	}
	for _, c := range cases {
		got, ok := encodeState(c.state)
		if ok != c.ok || (ok && got != c.want) {
			t.Errorf("encodeState(%v) = (%d,%v), want (%d,%v)", c.state, got, ok, c.want, c.ok)
		}
	}
}

func TestEncodeEventCodeKey(t *testing.T) {
	evType, code, err := encodeEventCode(event.Key(event.KeyCodeFromNumeric(30)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if evType != evdev.EV_KEY || code != evdev.EvCode(30) {
		t.Errorf("encodeEventCode(key 30) = (%v,%v), want (EV_KEY,30)", evType, code)
	}
}

func TestEncodeEventCodeSync(t *testing.T) {
	evType, code, err := encodeEventCode(event.Sync(event.SynReport))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if evType != evdev.EV_SYN || code != evdev.SYN_REPORT {
		t.Errorf("encodeEventCode(SYN_REPORT) = (%v,%v), want (EV_SYN,SYN_REPORT)", evType, code)
	}
}

func TestAllKeyCodesCoversEveryByte(t *testing.T) {
	codes := allKeyCodes()
	if len(codes) != 256 {
		t.Fatalf("allKeyCodes() len = %d, want 256", len(codes))
	}
}
