//go:build windows

package winguid

import (
	"golang.org/x/sys/windows"

	"github.com/lab2439/guid"
)

// From converts a guid.Guid to the native windows.GUID record
func From(g guid.Guid) windows.GUID {
	return windows.GUID{
		Data1: g.Data1,
		Data2: g.Data2,
		Data3: g.Data3,
		Data4: g.Data4,
	}
}

// To converts a native windows.GUID record to a guid.Guid
func To(w windows.GUID) guid.Guid {
	return guid.Guid{
		Data1: w.Data1,
		Data2: w.Data2,
		Data3: w.Data3,
		Data4: w.Data4,
	}
}

// Parse parses a canonical braced GUID string directly into the native
// record. The error, if any, is the *guid.ParseError from guid.Parse.
func Parse(s string) (windows.GUID, error) {
	g, err := guid.Parse(s)
	if err != nil {
		return windows.GUID{}, err
	}
	return From(g), nil
}
