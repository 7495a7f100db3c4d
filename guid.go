package guid

import (
	"database/sql/driver"
	"encoding/binary"
	"fmt"
)

// Guid represents a Windows globally unique identifier: a 128-bit value
// decomposed into the four fields of the native GUID record. The textual
// form is the customary one produced by guidgen.exe, wrapped in braces:
//
//	{6B29FC40-CA47-1067-B31D-00DD010662DA}
type Guid struct {
	Data1 uint32
	Data2 uint16
	Data3 uint16
	Data4 [8]byte
}

// textLen is the exact length of the canonical textual form, braces included.
const textLen = 38

// Nil is the nil GUID (all zeros)
var Nil Guid

// Variant represents the RFC 4122 variant bits of a GUID
type Variant byte

const (
	VariantNCS Variant = iota
	VariantRFC4122
	VariantMicrosoft
	VariantFuture
)

// Version returns the version nibble of the GUID (the high four bits of Data3)
func (g Guid) Version() byte {
	return byte(g.Data3 >> 12)
}

// Variant returns the variant of the GUID, read from the first Data4 byte
func (g Guid) Variant() Variant {
	switch {
	case (g.Data4[0] & 0x80) == 0x00:
		return VariantNCS
	case (g.Data4[0] & 0xc0) == 0x80:
		return VariantRFC4122
	case (g.Data4[0] & 0xe0) == 0xc0:
		return VariantMicrosoft
	default:
		return VariantFuture
	}
}

// String returns the canonical textual form of the GUID:
// {XXXXXXXX-XXXX-XXXX-XXXX-XXXXXXXXXXXX} with uppercase hex digits.
func (g Guid) String() string {
	var buf [textLen]byte
	encodeCanonical(buf[:], g)
	return string(buf[:])
}

const upperhex = "0123456789ABCDEF"

// encodeCanonical writes the braced canonical representation into dst,
// which must be at least textLen bytes long.
func encodeCanonical(dst []byte, g Guid) {
	b := g.Bytes()
	dst[0] = '{'
	j := 1
	for i := 0; i < 16; i++ {
		switch i {
		case 4, 6, 8, 10:
			dst[j] = '-'
			j++
		}
		dst[j] = upperhex[b[i]>>4]
		dst[j+1] = upperhex[b[i]&0x0f]
		j += 2
	}
	dst[37] = '}'
}

// Parse parses a GUID from its canonical textual form:
//
//	{XXXXXXXX-XXXX-XXXX-XXXX-XXXXXXXXXXXX}
//
// exactly 38 characters, braces and hyphens at fixed positions, hex digits
// case-insensitive. No other textual variant is accepted. The input is
// validated in a single left-to-right scan and the first structural
// mismatch is reported as a *ParseError identifying the offending position
// and character; on failure the returned Guid is the zero value.
func Parse(s string) (Guid, error) {
	var g Guid

	if len(s) != textLen {
		return g, &ParseError{Kind: LengthMismatch, Pos: -1, Length: len(s)}
	}
	if s[0] != '{' {
		return g, &ParseError{Kind: MissingOpenBrace, Pos: 0, Char: s[0]}
	}
	if s[37] != '}' {
		return g, &ParseError{Kind: MissingCloseBrace, Pos: 37, Char: s[37]}
	}
	for _, pos := range [4]int{9, 14, 19, 24} {
		if s[pos] != '-' {
			return g, &ParseError{Kind: MissingSeparator, Pos: pos, Char: s[pos]}
		}
	}

	d1, perr := parseHexGroup(s, 1, 8)
	if perr != nil {
		return g, perr
	}
	d2, perr := parseHexGroup(s, 10, 4)
	if perr != nil {
		return g, perr
	}
	d3, perr := parseHexGroup(s, 15, 4)
	if perr != nil {
		return g, perr
	}
	hi, perr := parseHexGroup(s, 20, 4)
	if perr != nil {
		return g, perr
	}
	lo, perr := parseHexGroup(s, 25, 12)
	if perr != nil {
		return g, perr
	}

	g.Data1 = uint32(d1)
	g.Data2 = uint16(d2)
	g.Data3 = uint16(d3)

	// Data4 carries the last 16 hex digits as bytes in input order: the
	// 4-digit group first, then the 12-digit group.
	g.Data4[0] = byte(hi >> 8)
	g.Data4[1] = byte(hi)
	g.Data4[2] = byte(lo >> 40)
	g.Data4[3] = byte(lo >> 32)
	g.Data4[4] = byte(lo >> 24)
	g.Data4[5] = byte(lo >> 16)
	g.Data4[6] = byte(lo >> 8)
	g.Data4[7] = byte(lo)

	return g, nil
}

// parseHexGroup decodes n hex digits starting at position start as a single
// big-endian value. The first non-hex character fails the whole parse.
func parseHexGroup(s string, start, n int) (uint64, *ParseError) {
	var v uint64
	for pos := start; pos < start+n; pos++ {
		d, ok := hexNibble(s[pos])
		if !ok {
			return 0, &ParseError{Kind: InvalidHexDigit, Pos: pos, Char: s[pos]}
		}
		v = v<<4 | uint64(d)
	}
	return v, nil
}

// hexNibble decodes a single hex digit, case-insensitive
func hexNibble(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// MustParse is like Parse but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables.
func MustParse(s string) Guid {
	g, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("guid: Parse(%q): %v", s, err))
	}
	return g
}

// Bytes returns the GUID as a flat 16-byte array: Data1, Data2 and Data3
// emitted big-endian, followed by Data4 verbatim. This matches the
// left-to-right hex digit order of the canonical textual form.
func (g Guid) Bytes() [16]byte {
	var b [16]byte
	binary.BigEndian.PutUint32(b[0:4], g.Data1)
	binary.BigEndian.PutUint16(b[4:6], g.Data2)
	binary.BigEndian.PutUint16(b[6:8], g.Data3)
	copy(b[8:16], g.Data4[:])
	return b
}

// IsNil returns true if the GUID is the nil GUID (all zeros)
func (g Guid) IsNil() bool {
	return g == Nil
}

// MarshalText implements the encoding.TextMarshaler interface.
// The output is the canonical braced form.
func (g Guid) MarshalText() ([]byte, error) {
	var buf [textLen]byte
	encodeCanonical(buf[:], g)
	return buf[:], nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
// Only the canonical braced form is accepted.
func (g *Guid) UnmarshalText(data []byte) error {
	id, err := Parse(string(data))
	if err != nil {
		return err
	}
	*g = id
	return nil
}

// MarshalBinary implements the encoding.BinaryMarshaler interface
func (g Guid) MarshalBinary() ([]byte, error) {
	b := g.Bytes()
	return b[:], nil
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface
func (g *Guid) UnmarshalBinary(data []byte) error {
	if len(data) != 16 {
		return ErrInvalidLength
	}
	id, _ := FromBytes(data)
	*g = id
	return nil
}

// Scan implements the sql.Scanner interface for database compatibility
func (g *Guid) Scan(src interface{}) error {
	switch src := src.(type) {
	case nil:
		return nil
	case string:
		id, err := Parse(src)
		if err != nil {
			return err
		}
		*g = id
		return nil
	case []byte:
		if len(src) == 16 {
			id, _ := FromBytes(src)
			*g = id
			return nil
		}
		if len(src) == 0 {
			return nil
		}
		id, err := Parse(string(src))
		if err != nil {
			return err
		}
		*g = id
		return nil
	default:
		return fmt.Errorf("guid: cannot scan type %T into Guid", src)
	}
}

// Value implements the driver.Valuer interface for database compatibility
func (g Guid) Value() (driver.Value, error) {
	return g.String(), nil
}

// Compare returns an integer comparing two GUIDs by their flat byte form.
// The result will be 0 if g==other, -1 if g < other, and +1 if g > other.
func (g Guid) Compare(other Guid) int {
	a, b := g.Bytes(), other.Bytes()
	for i := 0; i < 16; i++ {
		if a[i] < b[i] {
			return -1
		}
		if a[i] > b[i] {
			return 1
		}
	}
	return 0
}

// Equal returns true if g and other represent the same GUID
func (g Guid) Equal(other Guid) bool {
	return g == other
}
