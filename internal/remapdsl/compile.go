package remapdsl

import "github.com/layerkey/remapd/internal/layer"

// Compile parses and analyzes src in one step, the entry point the tests
// use; cmd/remapgen calls Parse and Generate instead.
func Compile(src string) (*layer.Table, error) {
	ast, err := Parse(src)
	if err != nil {
		return nil, err
	}
	return Analyze(ast)
}
