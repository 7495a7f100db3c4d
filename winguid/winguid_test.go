//go:build windows

package winguid

import (
	"testing"

	"golang.org/x/sys/windows"

	"github.com/lab2439/guid"
)

func TestFromTo(t *testing.T) {
	g := guid.MustParse("{6B29FC40-CA47-1067-B31D-00DD010662DA}")

	w := From(g)
	if w.Data1 != 0x6B29FC40 || w.Data2 != 0xCA47 || w.Data3 != 0x1067 {
		t.Errorf("From() = %+v, field mismatch", w)
	}
	if w.Data4 != [8]byte{0xB3, 0x1D, 0x00, 0xDD, 0x01, 0x06, 0x62, 0xDA} {
		t.Errorf("From() Data4 = %v", w.Data4)
	}

	if back := To(w); back != g {
		t.Errorf("To(From(g)) = %v, want %v", back, g)
	}
}

func TestParse(t *testing.T) {
	w, err := Parse("{6B29FC40-CA47-1067-B31D-00DD010662DA}")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if w != (windows.GUID{Data1: 0x6B29FC40, Data2: 0xCA47, Data3: 0x1067,
		Data4: [8]byte{0xB3, 0x1D, 0x00, 0xDD, 0x01, 0x06, 0x62, 0xDA}}) {
		t.Errorf("Parse() = %+v", w)
	}

	if _, err := Parse("6B29FC40-CA47-1067-B31D-00DD010662DA"); err == nil {
		t.Error("Parse() expected error for unbraced input")
	}
}
