// Command guidgen expands GUID string literals into generated Go source.
//
// It is the build-time counterpart of guid.Parse: each definition is parsed
// with the same runtime parser, and an invalid literal aborts generation
// with the position-level diagnostic, failing the build that invoked it.
//
// Definitions are given as Name={GUID} arguments, collected from a YAML
// manifest, or minted fresh with --random (the guidgen.exe workflow):
//
//	guidgen -p hwids -o hwids_gen.go 'AudioDevice={6B29FC40-CA47-1067-B31D-00DD010662DA}'
//	guidgen -m guids.yaml -o guids_gen.go
//	guidgen -p main --random NewInterfaceID
//
// A typical manifest:
//
//	package: hwids
//	guids:
//	  AudioDevice: "{6B29FC40-CA47-1067-B31D-00DD010662DA}"
//	  VideoDevice: "{D1B24A4E-0779-4B7A-9E41-7A038B847B22}"
//
// Intended use is a go:generate directive next to the consuming package:
//
//	//go:generate guidgen -m guids.yaml -o guids_gen.go
package main

import (
	"bytes"
	"fmt"
	"go/format"
	"go/token"
	"log"
	"os"
	"sort"
	"strings"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/lab2439/guid"
)

// definition is one named GUID to emit.
type definition struct {
	Name  string
	Value guid.Guid
}

// manifest is the YAML input format.
type manifest struct {
	Package string            `yaml:"package"`
	Guids   map[string]string `yaml:"guids"`
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("guidgen: ")

	var (
		output       string
		pkg          string
		manifestPath string
		random       []string
	)
	pflag.StringVarP(&output, "output", "o", "", "output file (default stdout)")
	pflag.StringVarP(&pkg, "package", "p", "", "package name for the generated file (default main)")
	pflag.StringVarP(&manifestPath, "manifest", "m", "", "YAML manifest of name: guid pairs")
	pflag.StringSliceVarP(&random, "random", "r", nil, "names to assign freshly generated GUIDs")
	pflag.Parse()

	var defs []definition

	if manifestPath != "" {
		mdefs, mpkg, err := loadManifest(manifestPath)
		if err != nil {
			log.Fatal(err)
		}
		if pkg == "" {
			pkg = mpkg
		}
		defs = append(defs, mdefs...)
	}

	for _, arg := range pflag.Args() {
		def, err := parseDefinition(arg)
		if err != nil {
			log.Fatal(err)
		}
		defs = append(defs, def)
	}

	for _, name := range random {
		g, err := guid.New()
		if err != nil {
			log.Fatalf("generating GUID for %s: %v", name, err)
		}
		defs = append(defs, definition{Name: name, Value: g})
	}

	if len(defs) == 0 {
		log.Fatal("no GUID definitions given (arguments, --manifest or --random)")
	}
	if pkg == "" {
		pkg = "main"
	}

	src, err := render(pkg, defs)
	if err != nil {
		log.Fatal(err)
	}

	if output == "" {
		os.Stdout.Write(src)
		return
	}
	if err := os.WriteFile(output, src, 0644); err != nil {
		log.Fatal(err)
	}
}

// parseDefinition splits a Name={GUID} argument and validates both halves.
func parseDefinition(arg string) (definition, error) {
	name, text, ok := strings.Cut(arg, "=")
	if !ok {
		return definition{}, fmt.Errorf("malformed definition %q (want Name={GUID})", arg)
	}
	if !token.IsIdentifier(name) {
		return definition{}, fmt.Errorf("%q is not a valid Go identifier", name)
	}
	g, err := guid.Parse(text)
	if err != nil {
		return definition{}, fmt.Errorf("%s: %w", name, err)
	}
	return definition{Name: name, Value: g}, nil
}

// loadManifest reads a YAML manifest and returns its definitions in
// name order so generation is deterministic.
func loadManifest(path string) ([]definition, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", err
	}

	var m manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, "", fmt.Errorf("%s: %w", path, err)
	}

	names := make([]string, 0, len(m.Guids))
	for name := range m.Guids {
		names = append(names, name)
	}
	sort.Strings(names)

	defs := make([]definition, 0, len(names))
	for _, name := range names {
		if !token.IsIdentifier(name) {
			return nil, "", fmt.Errorf("%s: %q is not a valid Go identifier", path, name)
		}
		g, err := guid.Parse(m.Guids[name])
		if err != nil {
			return nil, "", fmt.Errorf("%s: %s: %w", path, name, err)
		}
		defs = append(defs, definition{Name: name, Value: g})
	}
	return defs, m.Package, nil
}

// render emits gofmt-formatted Go source declaring one variable per
// definition, with every field spelled out as a hex constant.
func render(pkg string, defs []definition) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "// Code generated by guidgen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", pkg)
	fmt.Fprintf(&buf, "import \"github.com/lab2439/guid\"\n\n")

	for _, def := range defs {
		g := def.Value
		fmt.Fprintf(&buf, "// %s is %s\n", def.Name, g)
		fmt.Fprintf(&buf, "var %s = guid.Guid{\n", def.Name)
		fmt.Fprintf(&buf, "\tData1: 0x%08X,\n", g.Data1)
		fmt.Fprintf(&buf, "\tData2: 0x%04X,\n", g.Data2)
		fmt.Fprintf(&buf, "\tData3: 0x%04X,\n", g.Data3)
		fmt.Fprintf(&buf, "\tData4: [8]byte{0x%02X, 0x%02X, 0x%02X, 0x%02X, 0x%02X, 0x%02X, 0x%02X, 0x%02X},\n",
			g.Data4[0], g.Data4[1], g.Data4[2], g.Data4[3],
			g.Data4[4], g.Data4[5], g.Data4[6], g.Data4[7])
		fmt.Fprintf(&buf, "}\n\n")
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("formatting generated source: %w", err)
	}
	return src, nil
}
