// Package event defines the value types that flow through the remap
// pipeline: key codes, synchronization codes, key states, and the
// InputEvent that carries them. The numeric values mirror the Linux
// evdev KEY_* table verbatim so that events read from a physical device
// and events synthesized onto a virtual one agree on meaning.
package event

import (
	"fmt"
	"strings"
)

// KeyCode identifies a physical or synthesized key, using the same
// numeric space as the Linux evdev KEY_* constants.
type KeyCode uint16

// NotImplemented is reserved for key codes the remapper chooses not to
// carry. It never appears on the wire to a real evdev device.
const NotImplemented KeyCode = 768

// keyCodeNames and keyCodeValues are built once from keyCodeTable.
var (
	keyCodeNames  = make(map[KeyCode]string, len(keyCodeTable))
	keyCodeValues = make(map[string]KeyCode, len(keyCodeTable))
)

func init() {
	for name, code := range keyCodeTable {
		keyCodeNames[code] = name
		keyCodeValues[name] = code
	}
}

// String returns the canonical KC_-prefixed name for k, or a numeric
// fallback if k has no known name.
func (k KeyCode) String() string {
	if name, ok := keyCodeNames[k]; ok {
		return name
	}
	return fmt.Sprintf("KC_UNKNOWN(%d)", uint16(k))
}

// KeyCodeFromName parses a key code from its name, with or without the
// KC_ prefix (case-insensitive). "F" and "KC_F" are equivalent.
func KeyCodeFromName(s string) (KeyCode, error) {
	norm := normalizeKeyName(s)
	kc, ok := keyCodeValues[norm]
	if !ok {
		return 0, fmt.Errorf("invalid key code: %q", s)
	}
	return kc, nil
}

// KeyCodeFromNumeric converts a raw evdev numeric key code to a KeyCode.
// Unknown values are preserved rather than rejected: the caller may
// still want to log or pass through an opaque code.
func KeyCodeFromNumeric(n uint16) KeyCode {
	return KeyCode(n)
}

func normalizeKeyName(s string) string {
	s = strings.ToUpper(strings.TrimSpace(s))
	if !strings.HasPrefix(s, "KC_") {
		s = "KC_" + s
	}
	return s
}
