package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lab2439/guid"
)

func TestParseDefinition(t *testing.T) {
	tests := []struct {
		name    string
		arg     string
		wantErr bool
	}{
		{
			name:    "valid definition",
			arg:     "AudioDevice={6B29FC40-CA47-1067-B31D-00DD010662DA}",
			wantErr: false,
		},
		{
			name:    "missing equals",
			arg:     "AudioDevice{6B29FC40-CA47-1067-B31D-00DD010662DA}",
			wantErr: true,
		},
		{
			name:    "bad identifier",
			arg:     "audio-device={6B29FC40-CA47-1067-B31D-00DD010662DA}",
			wantErr: true,
		},
		{
			name:    "bad literal",
			arg:     "AudioDevice=6B29FC40-CA47-1067-B31D-00DD010662DA",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def, err := parseDefinition(tt.arg)
			if (err != nil) != tt.wantErr {
				t.Errorf("parseDefinition() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && def.Value.Data1 != 0x6B29FC40 {
				t.Errorf("Data1 = %#08x, want 0x6B29FC40", def.Value.Data1)
			}
		})
	}
}

func TestParseDefinition_ErrorDetail(t *testing.T) {
	// The parse diagnostic must survive wrapping so it reaches the build log.
	_, err := parseDefinition("X={6B29FC4G-CA47-1067-B31D-00DD010662DA}")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "position 8") {
		t.Errorf("error %q does not name the offending position", err)
	}
}

func TestRender(t *testing.T) {
	defs := []definition{
		{Name: "AudioDevice", Value: guid.MustParse("{6B29FC40-CA47-1067-B31D-00DD010662DA}")},
	}

	src, err := render("hwids", defs)
	if err != nil {
		t.Fatalf("render() error = %v", err)
	}

	out := string(src)
	for _, want := range []string{
		"// Code generated by guidgen. DO NOT EDIT.",
		"package hwids",
		`import "github.com/lab2439/guid"`,
		"var AudioDevice = guid.Guid{",
		"Data1: 0x6B29FC40,",
		"Data2: 0xCA47,",
		"Data3: 0x1067,",
		"Data4: [8]byte{0xB3, 0x1D, 0x00, 0xDD, 0x01, 0x06, 0x62, 0xDA},",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("generated source missing %q:\n%s", want, out)
		}
	}
}

func TestLoadManifest(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "guids.yaml")
	content := `package: hwids
guids:
  VideoDevice: "{D1B24A4E-0779-4B7A-9E41-7A038B847B22}"
  AudioDevice: "{6B29FC40-CA47-1067-B31D-00DD010662DA}"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	defs, pkg, err := loadManifest(path)
	if err != nil {
		t.Fatalf("loadManifest() error = %v", err)
	}
	if pkg != "hwids" {
		t.Errorf("package = %q, want hwids", pkg)
	}
	if len(defs) != 2 {
		t.Fatalf("got %d definitions, want 2", len(defs))
	}
	// Name order, for deterministic output
	if defs[0].Name != "AudioDevice" || defs[1].Name != "VideoDevice" {
		t.Errorf("definitions out of order: %s, %s", defs[0].Name, defs[1].Name)
	}
	if defs[0].Value.Data1 != 0x6B29FC40 {
		t.Errorf("Data1 = %#08x, want 0x6B29FC40", defs[0].Value.Data1)
	}
}

func TestLoadManifest_BadLiteral(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "guids.yaml")
	content := `guids:
  AudioDevice: "{6B29FC4G-CA47-1067-B31D-00DD010662DA}"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	if _, _, err := loadManifest(path); err == nil {
		t.Error("loadManifest() expected error for invalid literal")
	}
}
