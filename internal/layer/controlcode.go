// Package layer implements the Layer and LayerTable data model: a named,
// togglable mapping from event codes to ControlCode sequences, plus the
// ordered table of layers with lookup by index and by name.
package layer

import (
	"fmt"

	"github.com/layerkey/remapd/internal/event"
)

// ControlCodeKind tags which variant a ControlCode holds.
type ControlCodeKind int

const (
	// CCInputEvent carries a concrete event to forward to the Sink.
	CCInputEvent ControlCodeKind = iota
	// CCKeyMap is a source-side rewrite target; it only appears inside a
	// layer's map and is lowered to CCInputEvent by Layer.Transform.
	CCKeyMap
	// CCTapToggle is a tap-or-hold instruction bound to a layer and a key.
	CCTapToggle
	// CCExit terminates the pipeline cleanly.
	CCExit
)

// ControlCode is the sum type emitted by a Layer lookup and, after
// tap-toggle resolution, by the LayerComposer.
type ControlCode struct {
	Kind  ControlCodeKind
	Event event.InputEvent // valid when Kind == CCInputEvent
	Key   event.KeyCode    // valid when Kind == CCKeyMap or CCTapToggle (tap key)
	Ref   LayerRef         // valid when Kind == CCTapToggle
}

// InputEventCC wraps a concrete event for forwarding to the Sink.
func InputEventCC(e event.InputEvent) ControlCode {
	return ControlCode{Kind: CCInputEvent, Event: e}
}

// KeyMapCC rewrites the source key to k, preserving time and state.
func KeyMapCC(k event.KeyCode) ControlCode {
	return ControlCode{Kind: CCKeyMap, Key: k}
}

// TapToggleCC binds tap-key k to the given layer: a tap emits k, a hold
// activates ref.
func TapToggleCC(ref LayerRef, k event.KeyCode) ControlCode {
	return ControlCode{Kind: CCTapToggle, Ref: ref, Key: k}
}

// Exit is the sentinel control code that terminates the pipeline.
var Exit = ControlCode{Kind: CCExit}

func (c ControlCode) String() string {
	switch c.Kind {
	case CCInputEvent:
		return fmt.Sprintf("InputEvent(%s,%s)", c.Event.Code, c.Event.State)
	case CCKeyMap:
		return fmt.Sprintf("KeyMap(%s)", c.Key)
	case CCTapToggle:
		return fmt.Sprintf("TapToggle(%s,%s)", c.Ref, c.Key)
	case CCExit:
		return "Exit"
	default:
		return "ControlCode(?)"
	}
}

// LayerRefKind tags which variant a LayerRef holds.
type LayerRefKind int

const (
	RefByIndex LayerRefKind = iota
	RefByName
)

// LayerRef names a layer either by its position in the table or by its
// unique name. A Table checks its named refs once, when it is built;
// Table.Resolve still looks a named ref up by name on every call.
type LayerRef struct {
	Kind  LayerRefKind
	Index int
	Name  string
}

// ByIndex builds a LayerRef naming the layer at position i.
func ByIndex(i int) LayerRef { return LayerRef{Kind: RefByIndex, Index: i} }

// ByName builds a LayerRef naming the layer called name.
func ByName(name string) LayerRef { return LayerRef{Kind: RefByName, Name: name} }

func (r LayerRef) String() string {
	if r.Kind == RefByName {
		return fmt.Sprintf("ByName(%q)", r.Name)
	}
	return fmt.Sprintf("ByIndex(%d)", r.Index)
}
