// Package guid parses and formats Windows GUIDs in their canonical braced
// textual form, the syntax produced by guidgen.exe:
//
//	{6B29FC40-CA47-1067-B31D-00DD010662DA}
//
// A parsed value is decomposed into the four fields of the native GUID
// record (Data1, Data2, Data3, Data4), so it can be handed directly to
// platform APIs or embedded as a constant. Parsing is strict: the input
// must be exactly 38 characters with braces and hyphens at fixed positions,
// and every failure is reported as a *ParseError naming the offending
// position and character. This makes the package suitable for validating
// hand-typed or copy-pasted literals, where a plain "invalid format" is
// not much of a diagnostic.
//
// Basic Usage:
//
//	// Parse a GUID literal
//	g, err := guid.Parse("{6B29FC40-CA47-1067-B31D-00DD010662DA}")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("%08X %v\n", g.Data1, g.Data4)
//
//	// Initialize a package-level GUID
//	var MyInterface = guid.MustParse("{6B29FC40-CA47-1067-B31D-00DD010662DA}")
//
//	// Flat 16-byte form: big-endian within Data1/Data2/Data3,
//	// Data4 in input order
//	b := g.Bytes()
//
// Inspecting a failure:
//
//	_, err := guid.Parse("{6B29FC4G-CA47-1067-B31D-00DD010662DA}")
//	var perr *guid.ParseError
//	if errors.As(err, &perr) {
//	    fmt.Println(perr.Kind, perr.Pos) // InvalidHexDigit 8
//	}
//
// Build-time literals:
//
// The companion tool cmd/guidgen turns named GUID literals into generated
// Go source, calling the same Parse used at runtime, so an invalid literal
// fails the build with the position-level diagnostic. It is intended to be
// driven from a //go:generate directive.
//
// Thread Safety:
//
// Parsing and formatting are pure functions with no shared state; all
// operations are safe to call concurrently from any number of goroutines.
package guid
