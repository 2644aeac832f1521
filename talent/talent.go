// Package talent defines the selection-tree data model: nodes, the
// ordered catalog with its query helpers, and sparse selection mappings.
// The catalog is externally supplied and read-only; its ascending-ID
// order is what keeps encoder and decoder aligned.
package talent

// NodeKind identifies the structural variety of a talent node.
type NodeKind uint8

const (
	// KindNormal is a plain node: a rank and nothing else.
	KindNormal NodeKind = iota
	// KindChoice offers mutually exclusive named entries; selecting the
	// node requires both a rank and an entry index.
	KindChoice
	// KindSubtree is a selector node whose entries name entire sub-tree
	// groups; choosing an entry activates that group.
	KindSubtree
)

// String returns the kind name used in catalog files and diagnostics.
func (k NodeKind) String() string {
	switch k {
	case KindNormal:
		return "normal"
	case KindChoice:
		return "choice"
	case KindSubtree:
		return "subtree"
	default:
		return "unknown"
	}
}

// HasEntries reports whether nodes of this kind carry a choice entry list.
func (k NodeKind) HasEntries() bool {
	return k == KindChoice || k == KindSubtree
}

// Section identifies which of the three tree partitions a node belongs to.
type Section uint8

const (
	SectionPrimary Section = iota
	SectionSpecialization
	SectionSubTree
)

func (s Section) String() string {
	switch s {
	case SectionPrimary:
		return "primary"
	case SectionSpecialization:
		return "specialization"
	case SectionSubTree:
		return "subtree"
	default:
		return "unknown"
	}
}

// Node is one entry in the selection tree catalog.
type Node struct {
	ID        uint32
	Name      string
	MaxRank   int
	Kind      NodeKind
	Entries   []string // only for KindChoice and KindSubtree
	Granted   bool     // active at rank 1 without spending a point
	ReqPoints int      // gate threshold within the node's section; 0 if ungated
	Section   Section
	SubTree   string // sub-tree group name; only for SectionSubTree nodes
}

// Baseline returns the implicit rank the node holds without any purchase:
// 1 for granted nodes, 0 otherwise.
func (n *Node) Baseline() int {
	if n.Granted {
		return 1
	}
	return 0
}

// CostsPoints reports whether ranks in this node count against the
// section budget. Granted nodes and sub-tree selectors are free.
func (n *Node) CostsPoints() bool {
	return !n.Granted && n.Kind != KindSubtree
}

// Pick records the state of one selected node: how many ranks are
// invested and, for choice kinds, which entry was taken.
type Pick struct {
	Rank       int
	EntryIndex int // index into Node.Entries; -1 for KindNormal nodes
}

// Selection is a sparse mapping from node ID to its pick. A node absent
// from the map is unselected (rank 0).
type Selection map[uint32]Pick

// Rank returns the selected rank for id, or 0 if id is unselected.
func (s Selection) Rank(id uint32) int {
	return s[id].Rank
}

// Clone returns an independent copy of the selection.
func (s Selection) Clone() Selection {
	out := make(Selection, len(s))
	for id, p := range s {
		out[id] = p
	}
	return out
}
