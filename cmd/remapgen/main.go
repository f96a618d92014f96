// Command remapgen is the build-time remap-DSL compiler spec §4.4 calls
// for. Go has no macro system to embed the DSL in a host source file the
// way the original's proc-macro crate does, so remapgen plays that role
// instead: it is invoked via go:generate, reads a .remap source file, and
// writes a Go source file defining a function that builds the equivalent
// *layer.Table. Analysis (including the dangling-layer-reference check)
// runs at generate time, so a broken remap table fails `go generate`
// rather than surfacing at runtime.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/layerkey/remapd/internal/remapdsl"
)

func main() {
	in := flag.String("in", "", "path to the .remap source file")
	out := flag.String("out", "", "path to write the generated Go source")
	pkg := flag.String("package", "", "package name for the generated file")
	fn := flag.String("func", "Build", "name of the generated table-building function")
	flag.Parse()

	if *in == "" || *out == "" || *pkg == "" {
		fmt.Fprintln(os.Stderr, "usage: remapgen -in FILE.remap -out FILE.go -package NAME [-func Build]")
		os.Exit(2)
	}

	if err := run(*in, *out, *pkg, *fn); err != nil {
		fmt.Fprintf(os.Stderr, "remapgen: %v\n", err)
		os.Exit(1)
	}
}

func run(in, out, pkg, fn string) error {
	src, err := os.ReadFile(in)
	if err != nil {
		return fmt.Errorf("read %s: %w", in, err)
	}

	ast, err := remapdsl.Parse(string(src))
	if err != nil {
		return fmt.Errorf("parse %s: %w", in, err)
	}

	generated, err := remapdsl.Generate(pkg, fn, ast)
	if err != nil {
		return fmt.Errorf("analyze %s: %w", in, err)
	}

	if err := os.WriteFile(out, generated, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}
	return nil
}
