package codec

import (
	"fmt"

	"github.com/talentfoundry/loadout/codec/internal/bitstream"
	"github.com/talentfoundry/loadout/errors"
	"github.com/talentfoundry/loadout/talent"
)

// Encode serializes a selection mapping into a loadout string. Nodes are
// emitted in catalog order; identical inputs always produce identical
// strings. Encoding fails only for picks the wire format cannot
// represent: a rank above the node's maximum, a missing or out-of-range
// entry index on a choice node.
func Encode(treeID uint16, cat *talent.Catalog, sel talent.Selection) (string, error) {
	w := bitstream.NewWriter()

	w.Write(versionBits, SerializationVersion)
	w.Write(treeIDBits, uint64(treeID))
	for i := 0; i < treeHashBits; i += 32 {
		w.Write(32, 0) // reserved tree hash
	}

	nodes := cat.Nodes()
	for i := range nodes {
		n := &nodes[i]
		pick, ok := sel[n.ID]
		if !ok {
			w.Write(1, 0) // not selected
			continue
		}
		w.Write(1, 1) // selected

		if pick.Rank <= n.Baseline() {
			w.Write(1, 0) // granted only, nothing purchased
			continue
		}
		w.Write(1, 1) // purchased

		if pick.Rank > n.MaxRank {
			return "", errors.OutOfRange(errors.PhaseEncode, nodeLabel(n), "rank", pick.Rank, n.MaxRank)
		}
		if pick.Rank == n.MaxRank {
			w.Write(1, 0) // fully ranked
		} else {
			w.Write(1, 1) // partially ranked
			w.Write(rankBits, uint64(pick.Rank))
		}

		if n.Kind.HasEntries() {
			if pick.EntryIndex < 0 {
				return "", errors.ChoiceRequired(errors.PhaseEncode, nodeLabel(n))
			}
			if pick.EntryIndex >= len(n.Entries) || pick.EntryIndex >= MaxChoiceEntries {
				return "", errors.OutOfRange(errors.PhaseEncode, nodeLabel(n), "entry index", pick.EntryIndex, len(n.Entries)-1)
			}
			w.Write(1, 1)
			w.Write(choiceBits, uint64(pick.EntryIndex))
		} else {
			w.Write(1, 0)
		}
	}

	return w.Flush(), nil
}

func nodeLabel(n *talent.Node) string {
	if n.Name != "" {
		return n.Name
	}
	return fmt.Sprintf("#%d", n.ID)
}
