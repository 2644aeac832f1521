package codec

import (
	"errors"
	"fmt"

	"github.com/talentfoundry/loadout/codec/internal/bitstream"
	"github.com/talentfoundry/loadout/talent"
)

// Decoding errors returned by Decode.
var (
	ErrInvalidCharacter   = errors.New("loadout: character outside alphabet")
	ErrTooShort           = errors.New("loadout: string shorter than header")
	ErrUnsupportedVersion = errors.New("loadout: unsupported serialization version")
)

// Loadout is the result of decoding a loadout string.
type Loadout struct {
	TreeID     uint16
	Selections talent.Selection
}

// Decode reconstructs a selection mapping from a loadout string. It
// mirrors Encode bit for bit; the format is positional, so the two
// traversals must stay symmetric.
//
// The string may be shorter than the full catalog: trailing unselected
// nodes need not be encoded, and decoding stops once fewer than one bit
// remains.
func Decode(s string, cat *talent.Catalog) (*Loadout, error) {
	r, err := bitstream.NewReader(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCharacter, err)
	}
	if r.Remaining() < headerBits {
		return nil, fmt.Errorf("%w: %d bits, header needs %d", ErrTooShort, r.Remaining(), headerBits)
	}

	// The version byte is always read first; everything after it is
	// dispatched on its value. A future format revision gets its own
	// branch here, never a silent reinterpretation of the current layout.
	version := r.Read(versionBits)
	if version != SerializationVersion {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrUnsupportedVersion, version, SerializationVersion)
	}

	treeID := uint16(r.Read(treeIDBits))
	r.Skip(treeHashBits) // reserved tree hash, currently unchecked

	sel := make(talent.Selection)
	nodes := cat.Nodes()
	for i := range nodes {
		n := &nodes[i]
		if r.Remaining() < 1 {
			break // all remaining nodes are unselected
		}
		if r.Read(1) == 0 {
			continue // not selected
		}

		rank := n.Baseline()
		entry := -1
		if r.Read(1) == 1 { // purchased
			if r.Read(1) == 0 {
				rank = n.MaxRank
			} else {
				rank = int(r.Read(rankBits))
			}
			if r.Read(1) == 1 {
				entry = int(r.Read(choiceBits))
			}
		}

		// A non-granted node marked selected but not purchased carries
		// no rank; the record is meaningless and is dropped.
		if rank < 1 {
			continue
		}
		sel[n.ID] = talent.Pick{Rank: rank, EntryIndex: entry}
	}

	return &Loadout{TreeID: treeID, Selections: sel}, nil
}
