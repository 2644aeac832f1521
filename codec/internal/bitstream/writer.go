package bitstream

import "strings"

// Alphabet is the fixed 64-symbol output alphabet. A symbol's index is
// its 6-bit group value; the assignment is order-significant and must
// match the external client exactly.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

// SymbolBits is the number of bits carried by one alphabet symbol.
const SymbolBits = 6

// Writer accumulates bits least-significant first and emits one alphabet
// symbol per full 6-bit group.
type Writer struct {
	out   strings.Builder
	acc   uint32
	nbits uint
	total int
}

// NewWriter creates an empty Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Write appends the low bits of v, least-significant bit first.
func (w *Writer) Write(bits int, v uint64) {
	w.total += bits
	for bits > 0 {
		take := SymbolBits - w.nbits
		if int(take) > bits {
			take = uint(bits)
		}
		w.acc |= uint32(v&((1<<take)-1)) << w.nbits
		v >>= take
		w.nbits += take
		bits -= int(take)
		if w.nbits == SymbolBits {
			w.out.WriteByte(Alphabet[w.acc])
			w.acc = 0
			w.nbits = 0
		}
	}
}

// BitLen returns the number of bits written so far, including any
// partial group not yet flushed.
func (w *Writer) BitLen() int {
	return w.total
}

// Flush emits the final partial group, zero-padded in its unfilled high
// bits, and returns the complete symbol string. The Writer must not be
// used afterwards.
func (w *Writer) Flush() string {
	if w.nbits > 0 {
		w.out.WriteByte(Alphabet[w.acc])
		w.acc = 0
		w.nbits = 0
	}
	return w.out.String()
}
