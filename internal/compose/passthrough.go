package compose

import (
	"github.com/layerkey/remapd/internal/event"
	"github.com/layerkey/remapd/internal/layer"
)

// DefaultExitKey is the key Passthrough maps to Exit when no layer
// claims an event first.
const DefaultExitKey = event.KeyCode(119) // KC_PAUSE

// Transformer is anything that can consume one InputEvent and produce
// zero or more ControlCodes. LayerComposer implements it, and so does
// Passthrough, which lets either serve as the LayerComposer's fallback
// base case.
type Transformer interface {
	Transform(e event.InputEvent) (ccs []layer.ControlCode, ok bool)
}

// Passthrough forwards every event unchanged except for its ExitKey,
// which it translates to Exit. It is the built-in handler LayerComposer
// falls back to when no layer in the table claims an event.
type Passthrough struct {
	ExitKey event.KeyCode
}

// NewPassthrough returns a Passthrough using DefaultExitKey.
func NewPassthrough() *Passthrough {
	return &Passthrough{ExitKey: DefaultExitKey}
}

// Transform implements Transformer.
func (p *Passthrough) Transform(e event.InputEvent) ([]layer.ControlCode, bool) {
	if e.Code == event.Key(p.ExitKey) {
		return []layer.ControlCode{layer.Exit}, true
	}
	return []layer.ControlCode{layer.InputEventCC(e)}, true
}
