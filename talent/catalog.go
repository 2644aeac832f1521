package talent

import (
	"fmt"
	"sort"
)

// Budgets holds the exact number of points each section must spend for a
// build to be structurally valid.
type Budgets struct {
	Primary        int
	Specialization int
	SubTree        int
}

// DefaultBudgets are the section budgets in the current game data.
var DefaultBudgets = Budgets{Primary: 34, Specialization: 34, SubTree: 13}

// For returns the budget for the given section.
func (b Budgets) For(s Section) int {
	switch s {
	case SectionPrimary:
		return b.Primary
	case SectionSpecialization:
		return b.Specialization
	default:
		return b.SubTree
	}
}

// Catalog is an immutable, ascending-ID-ordered set of nodes for one
// talent tree. Catalog order is the single source of truth for the wire
// format: encoder and decoder both walk Nodes() front to back.
type Catalog struct {
	treeID  uint16
	nodes   []Node
	byID    map[uint32]int
	byName  map[string]int
	budgets Budgets
}

// New builds a catalog from an arbitrary-order node list. Nodes are
// sorted by ascending ID; duplicate IDs and malformed choice nodes are
// rejected.
func New(treeID uint16, nodes []Node) (*Catalog, error) {
	sorted := make([]Node, len(nodes))
	copy(sorted, nodes)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	c := &Catalog{
		treeID:  treeID,
		nodes:   sorted,
		byID:    make(map[uint32]int, len(sorted)),
		byName:  make(map[string]int, len(sorted)),
		budgets: DefaultBudgets,
	}
	for i := range sorted {
		n := &sorted[i]
		if _, dup := c.byID[n.ID]; dup {
			return nil, fmt.Errorf("duplicate node ID %d", n.ID)
		}
		if n.MaxRank < 1 {
			return nil, fmt.Errorf("node %d: max rank %d, must be at least 1", n.ID, n.MaxRank)
		}
		if n.Kind.HasEntries() && len(n.Entries) == 0 {
			return nil, fmt.Errorf("node %d: %s node has no entries", n.ID, n.Kind)
		}
		if !n.Kind.HasEntries() && len(n.Entries) > 0 {
			return nil, fmt.Errorf("node %d: %s node carries entries", n.ID, n.Kind)
		}
		c.byID[n.ID] = i
		if n.Name != "" {
			c.byName[n.Name] = i
		}
	}
	return c, nil
}

// TreeID returns the tree identity written into encoded strings.
func (c *Catalog) TreeID() uint16 { return c.treeID }

// Nodes returns the nodes in ascending ID order. Callers must not
// modify the returned slice.
func (c *Catalog) Nodes() []Node { return c.nodes }

// Len returns the number of nodes.
func (c *Catalog) Len() int { return len(c.nodes) }

// Node returns the node with the given ID.
func (c *Catalog) Node(id uint32) (*Node, bool) {
	i, ok := c.byID[id]
	if !ok {
		return nil, false
	}
	return &c.nodes[i], true
}

// ByName returns the node with the given display name.
func (c *Catalog) ByName(name string) (*Node, bool) {
	i, ok := c.byName[name]
	if !ok {
		return nil, false
	}
	return &c.nodes[i], true
}

// Budgets returns the section budgets in force for this catalog.
func (c *Catalog) Budgets() Budgets { return c.budgets }

// SetBudgets overrides the default section budgets.
func (c *Catalog) SetBudgets(b Budgets) { c.budgets = b }

// SectionNodes returns the nodes belonging to the given section, in
// catalog order.
func (c *Catalog) SectionNodes(s Section) []Node {
	var out []Node
	for i := range c.nodes {
		if c.nodes[i].Section == s {
			out = append(out, c.nodes[i])
		}
	}
	return out
}

// SubTreeNames returns the distinct sub-tree group names present in the
// catalog, in first-seen catalog order.
func (c *Catalog) SubTreeNames() []string {
	seen := make(map[string]bool)
	var out []string
	for i := range c.nodes {
		name := c.nodes[i].SubTree
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}
	return out
}

// SubTreeNodes returns the nodes belonging to the named sub-tree group.
func (c *Catalog) SubTreeNodes(name string) []Node {
	var out []Node
	for i := range c.nodes {
		if c.nodes[i].SubTree == name {
			out = append(out, c.nodes[i])
		}
	}
	return out
}

// Selector discovers the sub-tree selector node by structural property:
// the first KindSubtree node whose entries all name sub-tree groups that
// exist in this catalog. Discovery rather than a hardcoded ID keeps the
// codec correct when the external data source renumbers nodes.
func (c *Catalog) Selector() (*Node, bool) {
	groups := make(map[string]bool)
	for _, name := range c.SubTreeNames() {
		groups[name] = true
	}
	for i := range c.nodes {
		n := &c.nodes[i]
		if n.Kind != KindSubtree {
			continue
		}
		all := len(n.Entries) > 0
		for _, e := range n.Entries {
			if !groups[e] {
				all = false
				break
			}
		}
		if all {
			return n, true
		}
	}
	return nil, false
}
