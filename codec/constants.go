package codec

import "github.com/talentfoundry/loadout/codec/internal/bitstream"

// Alphabet is the 64-symbol output alphabet shared with the external
// client. Symbol index equals 6-bit group value.
const Alphabet = bitstream.Alphabet

// SerializationVersion is the only wire format version this package
// reads or writes.
const SerializationVersion = 2

// Field widths of the loadout string format. The per-node record is
// positional: any change here must land in encode and decode together.
const (
	versionBits  = 8
	treeIDBits   = 16
	treeHashBits = 128 // reserved; zero on encode, skipped on decode
	rankBits     = 6
	choiceBits   = 2

	headerBits = versionBits + treeIDBits + treeHashBits
)

// MaxChoiceEntries is the largest entry count representable in the
// choice index field.
const MaxChoiceEntries = 1 << choiceBits
