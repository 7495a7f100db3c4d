package guid

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidFormat indicates that an encoded GUID is malformed
	ErrInvalidFormat = errors.New("guid: invalid GUID format")

	// ErrInvalidLength indicates that a GUID byte slice has incorrect length
	ErrInvalidLength = errors.New("guid: invalid GUID length (expected 16 bytes)")
)

// ErrorKind identifies which structural expectation of the canonical
// textual form a failed parse violated.
type ErrorKind int

const (
	// LengthMismatch: the input is not exactly 38 characters long
	LengthMismatch ErrorKind = iota
	// MissingOpenBrace: the first character is not '{'
	MissingOpenBrace
	// MissingCloseBrace: the last character is not '}'
	MissingCloseBrace
	// MissingSeparator: a hyphen is absent at one of positions 9, 14, 19, 24
	MissingSeparator
	// InvalidHexDigit: a non-hex character occupies a digit position
	InvalidHexDigit
)

// ParseError reports the first structural mismatch found while scanning a
// GUID string. Exactly one is reported per failed parse.
type ParseError struct {
	Kind   ErrorKind
	Pos    int  // position of the offending character, -1 for length errors
	Char   byte // the offending character, unset for length errors
	Length int  // actual input length, set for LengthMismatch only
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case LengthMismatch:
		return fmt.Sprintf("guid: invalid length: expected %d characters, got %d", textLen, e.Length)
	case MissingOpenBrace:
		return fmt.Sprintf("guid: expected '{' at position 0, got %q", e.Char)
	case MissingCloseBrace:
		return fmt.Sprintf("guid: expected '}' at position %d, got %q", textLen-1, e.Char)
	case MissingSeparator:
		return fmt.Sprintf("guid: expected '-' at position %d, got %q", e.Pos, e.Char)
	case InvalidHexDigit:
		return fmt.Sprintf("guid: invalid hex digit %q at position %d", e.Char, e.Pos)
	}
	return "guid: invalid GUID"
}

// Is reports ErrInvalidFormat as a match so callers can test any parse
// failure with errors.Is without inspecting the kind.
func (e *ParseError) Is(target error) bool {
	return target == ErrInvalidFormat
}
