package event

import "testing"

func TestKeyCodeFromNameAcceptsBareAndPrefixed(t *testing.T) {
	tests := []struct {
		name string
		want KeyCode
	}{
		{"F", 33},
		{"KC_F", 33},
		{"kc_f", 33},
		{"  f  ", 33},
		{"HOME", 102},
		{"KC_HOME", 102},
		{"PAUSE", 119},
	}
	for _, tt := range tests {
		got, err := KeyCodeFromName(tt.name)
		if err != nil {
			t.Fatalf("KeyCodeFromName(%q): unexpected error: %v", tt.name, err)
		}
		if got != tt.want {
			t.Errorf("KeyCodeFromName(%q) = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestKeyCodeFromNameRejectsUnknown(t *testing.T) {
	if _, err := KeyCodeFromName("NOSUCHKEY"); err == nil {
		t.Fatalf("expected error for unknown key name")
	}
}

func TestKeyCodeNumericMatchesEvdevTable(t *testing.T) {
	tests := map[string]KeyCode{
		"KC_F":     33,
		"KC_PAUSE": 119,
		"KC_HOME":  102,
		"KC_A":     30,
		"KC_Z":     44,
	}
	for name, want := range tests {
		got, err := KeyCodeFromName(name)
		if err != nil {
			t.Fatalf("KeyCodeFromName(%q): %v", name, err)
		}
		if got != want {
			t.Errorf("%s = %d, want %d", name, got, want)
		}
	}
}

func TestKeyCodeStringRoundTrip(t *testing.T) {
	kc, err := KeyCodeFromName("KC_J")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if kc.String() != "KC_J" {
		t.Errorf("String() = %q, want KC_J", kc.String())
	}
}

func TestKeyCodeFromNumericPreservesUnknownValues(t *testing.T) {
	kc := KeyCodeFromNumeric(9001)
	if kc != KeyCode(9001) {
		t.Errorf("KeyCodeFromNumeric(9001) = %d, want 9001", kc)
	}
}
