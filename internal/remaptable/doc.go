// Package remaptable holds the compiled remap table generated by
// cmd/remapgen from example.remap. It is a concrete instance of the
// build-time DSL compilation spec §4.4 describes: cmd/remapd links
// against Build directly, so a malformed example.remap fails `go
// generate`, not a runtime load.
package remaptable

//go:generate go run ../../cmd/remapgen -in example.remap -out table_gen.go -package remaptable -func Build
