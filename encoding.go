package guid

import (
	"encoding/base64"
	"encoding/hex"
)

// EncodeToHex encodes the GUID's flat byte form to a hexadecimal string
// without braces or hyphens
func (g Guid) EncodeToHex() string {
	b := g.Bytes()
	return hex.EncodeToString(b[:])
}

// EncodeToBase64 encodes the GUID's flat byte form to a base64 string
// (URL-safe, no padding)
func (g Guid) EncodeToBase64() string {
	b := g.Bytes()
	return base64.RawURLEncoding.EncodeToString(b[:])
}

// EncodeToBase64Std encodes the GUID's flat byte form to a standard base64 string
func (g Guid) EncodeToBase64Std() string {
	b := g.Bytes()
	return base64.StdEncoding.EncodeToString(b[:])
}

// DecodeFromHex decodes a 32-digit hexadecimal string to a Guid
func DecodeFromHex(s string) (Guid, error) {
	if len(s) != 32 {
		return Guid{}, ErrInvalidFormat
	}
	var b [16]byte
	if _, err := hex.Decode(b[:], []byte(s)); err != nil {
		return Guid{}, ErrInvalidFormat
	}
	return FromBytes(b[:])
}

// DecodeFromBase64 decodes a base64 string to a Guid (URL-safe encoding)
func DecodeFromBase64(s string) (Guid, error) {
	data, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return Guid{}, ErrInvalidFormat
	}
	if len(data) != 16 {
		return Guid{}, ErrInvalidLength
	}
	return FromBytes(data)
}

// DecodeFromBase64Std decodes a standard base64 string to a Guid
func DecodeFromBase64Std(s string) (Guid, error) {
	data, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return Guid{}, ErrInvalidFormat
	}
	if len(data) != 16 {
		return Guid{}, ErrInvalidLength
	}
	return FromBytes(data)
}

// FromBytes creates a Guid from a flat 16-byte slice, interpreting the
// first eight bytes as big-endian Data1/Data2/Data3 and copying the rest
// into Data4. It is the inverse of Bytes.
func FromBytes(b []byte) (Guid, error) {
	var g Guid
	if len(b) != 16 {
		return g, ErrInvalidLength
	}
	g.Data1 = uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
	g.Data2 = uint16(b[4])<<8 | uint16(b[5])
	g.Data3 = uint16(b[6])<<8 | uint16(b[7])
	copy(g.Data4[:], b[8:16])
	return g, nil
}

// MustFromBytes is like FromBytes but panics on error
func MustFromBytes(b []byte) Guid {
	g, err := FromBytes(b)
	if err != nil {
		panic(err)
	}
	return g
}
