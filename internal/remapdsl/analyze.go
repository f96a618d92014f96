package remapdsl

import (
	"fmt"

	"github.com/layerkey/remapd/internal/event"
	"github.com/layerkey/remapd/internal/layer"
)

// AnalyzeError is raised by Analyze, anchored at the AST node that
// failed validation.
type AnalyzeError struct {
	Pos Pos
	Msg string
}

func (e *AnalyzeError) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Msg)
}

// validKeyFunctions lists the key-function names a ControlCodeSyntax's
// FuncName may hold.
var validKeyFunctions = []string{"TT", "TapToggle", "Exit"}

// validLayerOptions lists the identifiers a layer's bracketed option
// list may hold.
var validLayerOptions = []string{"Active"}

// Analyze lowers a parsed Ast into a *layer.Table, performing every
// check the original macro pipeline did in its analyze stage: key
// function argument arity, key-code validity, layer option validity,
// and tap-toggle layer-reference validity (an unknown layer name is
// reported here with the full set of declared names, rather than left
// for layer.NewTable's generic "unknown layer" error).
func Analyze(ast *Ast) (*layer.Table, error) {
	if err := validateReferences(ast); err != nil {
		return nil, err
	}

	layers := make([]*layer.Layer, 0, len(ast.Layers))
	for _, ls := range ast.Layers {
		l, err := lowerLayer(ls)
		if err != nil {
			return nil, err
		}
		layers = append(layers, l)
	}

	table, err := layer.NewTable(layers)
	if err != nil {
		return nil, fmt.Errorf("invalid layer table: %w", err)
	}
	return table, nil
}

func validateReferences(ast *Ast) error {
	names := make(map[string]struct{}, len(ast.Layers))
	for _, ls := range ast.Layers {
		names[ls.Name] = struct{}{}
	}

	for _, ls := range ast.Layers {
		for _, km := range ls.KeyMaps {
			rhs := km.RHS
			if !rhs.IsFunction {
				continue
			}
			if rhs.FuncName != "TT" && rhs.FuncName != "TapToggle" {
				continue
			}
			if len(rhs.Args) == 0 {
				continue // reported by lowerControlCode as a missing-argument error
			}
			ref := rhs.Args[0]
			if _, ok := names[ref.Name]; !ok {
				return &AnalyzeError{
					Pos: ref.Pos,
					Msg: fmt.Sprintf("unknown layer %q, declared layers are %s", ref.Name, declaredNames(ast)),
				}
			}
		}
	}
	return nil
}

func declaredNames(ast *Ast) []string {
	out := make([]string, 0, len(ast.Layers))
	for _, ls := range ast.Layers {
		out = append(out, ls.Name)
	}
	return out
}

func lowerLayer(ls LayerSyntax) (*layer.Layer, error) {
	lookup := make(map[event.EventCode][]layer.ControlCode, len(ls.KeyMaps))
	for _, km := range ls.KeyMaps {
		key, err := event.KeyCodeFromName(km.Key)
		if err != nil {
			return nil, &AnalyzeError{Pos: km.KeyPos, Msg: err.Error()}
		}
		cc, err := lowerControlCode(km.RHS)
		if err != nil {
			return nil, err
		}
		lookup[event.Key(key)] = []layer.ControlCode{cc}
	}

	active := false
	for _, opt := range ls.Opts {
		switch opt.Name {
		case "Active":
			active = true
		default:
			return nil, &AnalyzeError{
				Pos: opt.Pos,
				Msg: fmt.Sprintf("invalid layer option %q, valid layer options are %v", opt.Name, validLayerOptions),
			}
		}
	}

	return layer.New(ls.Name, lookup, active), nil
}

func lowerControlCode(cc ControlCodeSyntax) (layer.ControlCode, error) {
	if !cc.IsFunction {
		kc, err := event.KeyCodeFromName(cc.Key)
		if err != nil {
			return layer.ControlCode{}, &AnalyzeError{Pos: cc.Pos, Msg: err.Error()}
		}
		return layer.KeyMapCC(kc), nil
	}

	switch cc.FuncName {
	case "Exit":
		if len(cc.Args) > 0 {
			return layer.ControlCode{}, &AnalyzeError{Pos: cc.Args[0].Pos, Msg: "unexpected argument"}
		}
		return layer.Exit, nil

	case "TT", "TapToggle":
		if len(cc.Args) < 1 {
			return layer.ControlCode{}, &AnalyzeError{Pos: cc.FuncPos, Msg: "missing layer ref argument"}
		}
		if len(cc.Args) < 2 {
			return layer.ControlCode{}, &AnalyzeError{Pos: cc.FuncPos, Msg: "missing key code argument"}
		}
		if len(cc.Args) > 2 {
			return layer.ControlCode{}, &AnalyzeError{Pos: cc.Args[2].Pos, Msg: "unexpected argument"}
		}
		ref := layer.ByName(cc.Args[0].Name)
		key, err := event.KeyCodeFromName(cc.Args[1].Name)
		if err != nil {
			return layer.ControlCode{}, &AnalyzeError{Pos: cc.Args[1].Pos, Msg: err.Error()}
		}
		return layer.TapToggleCC(ref, key), nil

	default:
		return layer.ControlCode{}, &AnalyzeError{
			Pos: cc.FuncPos,
			Msg: fmt.Sprintf("invalid key function %q, valid key functions are %v", cc.FuncName, validKeyFunctions),
		}
	}
}
