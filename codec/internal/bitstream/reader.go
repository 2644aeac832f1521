package bitstream

import (
	"errors"
	"fmt"
)

// ErrInvalidSymbol is returned by NewReader for a character outside the
// alphabet.
var ErrInvalidSymbol = errors.New("bitstream: symbol not in alphabet")

// symbolValues maps an ASCII byte to its 6-bit value, or -1.
var symbolValues [256]int8

func init() {
	for i := range symbolValues {
		symbolValues[i] = -1
	}
	for i := 0; i < len(Alphabet); i++ {
		symbolValues[Alphabet[i]] = int8(i)
	}
}

// Reader yields bits on demand from a symbol string, least-significant
// bit of each 6-bit group first. Reads past the end of the stream return
// zero bits, matching the encoder's zero padding.
type Reader struct {
	vals []uint8
	pos  int // bits consumed so far
}

// NewReader validates every character of s against the alphabet and
// returns a Reader positioned at the first bit.
func NewReader(s string) (*Reader, error) {
	vals := make([]uint8, len(s))
	for i := 0; i < len(s); i++ {
		v := symbolValues[s[i]]
		if v < 0 {
			return nil, fmt.Errorf("%w: %q at position %d", ErrInvalidSymbol, s[i], i)
		}
		vals[i] = uint8(v)
	}
	return &Reader{vals: vals}, nil
}

// Read returns the next bits as an unsigned integer assembled LSB-first.
func (r *Reader) Read(bits int) uint64 {
	var out uint64
	for i := 0; i < bits; i++ {
		if r.pos < len(r.vals)*SymbolBits {
			sym := r.vals[r.pos/SymbolBits]
			bit := (sym >> (r.pos % SymbolBits)) & 1
			out |= uint64(bit) << i
		}
		r.pos++
	}
	return out
}

// Skip advances past bits without assembling a value.
func (r *Reader) Skip(bits int) {
	r.pos += bits
}

// Remaining returns the stream length in bits minus bits consumed. It is
// negative once reads have run past the end.
func (r *Reader) Remaining() int {
	return len(r.vals)*SymbolBits - r.pos
}
