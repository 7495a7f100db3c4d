package guid

import (
	"crypto/rand"
	"io"
)

// Generator produces random (version 4) GUIDs from a configurable
// randomness source.
type Generator struct {
	randReader io.Reader
}

// NewGenerator creates a new GUID generator with crypto/rand as the random source
func NewGenerator() *Generator {
	return &Generator{
		randReader: rand.Reader,
	}
}

// NewGeneratorWithReader creates a new GUID generator with a custom random source.
// This is primarily useful for testing with deterministic random sources.
func NewGeneratorWithReader(r io.Reader) *Generator {
	return &Generator{
		randReader: r,
	}
}

// New generates a new random version-4 GUID. The generator holds no state
// between calls, so it is safe for concurrent use as long as the underlying
// reader is.
func (g *Generator) New() (Guid, error) {
	var b [16]byte
	if _, err := io.ReadFull(g.randReader, b[:]); err != nil {
		return Guid{}, err
	}

	// Set version 4 and the RFC 4122 variant (10xx xxxx)
	b[6] = (b[6] & 0x0f) | 0x40
	b[8] = (b[8] & 0x3f) | 0x80

	return FromBytes(b[:])
}

// Must is a helper that wraps a call to a function returning (Guid, error)
// and panics if the error is non-nil. It is intended for use in variable
// initializations such as:
//
//	var id = guid.Must(guid.New())
func Must(g Guid, err error) Guid {
	if err != nil {
		panic(err)
	}
	return g
}

// defaultGenerator is the package-level generator used by the New* functions
var defaultGenerator = NewGenerator()

// New generates a new random GUID using the default generator.
// This is a convenience function that uses the package-level generator.
func New() (Guid, error) {
	return defaultGenerator.New()
}

// NewV4 is an alias for New() for explicit version specification
func NewV4() (Guid, error) {
	return defaultGenerator.New()
}
