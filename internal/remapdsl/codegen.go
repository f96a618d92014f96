package remapdsl

import (
	"bytes"
	"fmt"
	"go/format"
	"sort"

	"github.com/layerkey/remapd/internal/event"
	"github.com/layerkey/remapd/internal/layer"
)

// Generate renders ast as a Go source file defining a package-level
// function that builds the equivalent *layer.Table, for cmd/remapgen to
// write alongside the .remap source it was compiled from. It re-runs
// Analyze so codegen can never emit a table that failed validation.
func Generate(packageName, funcName string, ast *Ast) ([]byte, error) {
	if _, err := Analyze(ast); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by cmd/remapgen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", packageName)
	fmt.Fprintf(&buf, "import (\n")
	fmt.Fprintf(&buf, "\t%q\n", "github.com/layerkey/remapd/internal/event")
	fmt.Fprintf(&buf, "\t%q\n", "github.com/layerkey/remapd/internal/layer")
	fmt.Fprintf(&buf, ")\n\n")
	fmt.Fprintf(&buf, "func %s() (*layer.Table, error) {\n", funcName)
	fmt.Fprintf(&buf, "\tlayers := make([]*layer.Layer, 0, %d)\n\n", len(ast.Layers))

	for _, ls := range ast.Layers {
		active := false
		for _, opt := range ls.Opts {
			if opt.Name == "Active" {
				active = true
			}
		}

		fmt.Fprintf(&buf, "\tlayers = append(layers, layer.New(%q, map[event.EventCode][]layer.ControlCode{\n", ls.Name)
		for _, km := range sortedKeyMaps(ls.KeyMaps) {
			cc, err := lowerControlCode(km.RHS)
			if err != nil {
				return nil, err
			}
			key, err := event.KeyCodeFromName(km.Key)
			if err != nil {
				return nil, &AnalyzeError{Pos: km.KeyPos, Msg: err.Error()}
			}
			fmt.Fprintf(&buf, "\t\tevent.Key(%d): {%s},\n", uint16(key), renderControlCode(cc))
		}
		fmt.Fprintf(&buf, "\t}, %v))\n\n", active)
	}

	fmt.Fprintf(&buf, "\treturn layer.NewTable(layers)\n")
	fmt.Fprintf(&buf, "}\n")

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("formatting generated source: %w", err)
	}
	return formatted, nil
}

// sortedKeyMaps returns km in a stable order so repeated generation of
// the same source is byte-identical.
func sortedKeyMaps(kms []KeyMapSyntax) []KeyMapSyntax {
	out := make([]KeyMapSyntax, len(kms))
	copy(out, kms)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

func renderControlCode(cc layer.ControlCode) string {
	switch cc.Kind {
	case layer.CCKeyMap:
		return fmt.Sprintf("layer.KeyMapCC(event.KeyCode(%d))", uint16(cc.Key))
	case layer.CCExit:
		return "layer.Exit"
	case layer.CCTapToggle:
		return fmt.Sprintf("layer.TapToggleCC(layer.ByName(%q), event.KeyCode(%d))", cc.Ref.Name, uint16(cc.Key))
	default:
		return "layer.ControlCode{}"
	}
}
