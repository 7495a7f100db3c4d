// Package winguid converts between guid.Guid and the in-memory GUID record
// used by Win32 APIs (golang.org/x/sys/windows.GUID). The two types share
// the same four-field layout, so the conversion is a plain field copy.
//
// The conversion functions are only compiled on Windows; the core guid
// package stays platform-independent.
package winguid
