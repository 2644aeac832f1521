package codec

import (
	"fmt"
	"sort"

	"github.com/talentfoundry/loadout/talent"
)

// Report is the outcome of validating a selection mapping. Problems are
// human-readable; Valid is true exactly when the list is empty.
type Report struct {
	Problems []string
	Valid    bool
}

// Validate checks a selection mapping against the catalog's point
// budgets, gate thresholds, and selector consistency. All violations are
// collected into one report; nothing short-circuits, so a caller sees
// the complete list in a single pass. Rule violations are never errors.
func Validate(sel talent.Selection, cat *talent.Catalog) Report {
	var problems []string
	problems = append(problems, checkBudgets(sel, cat)...)
	problems = append(problems, checkGates(sel, cat)...)
	problems = append(problems, checkSelectors(sel, cat)...)
	return Report{Problems: problems, Valid: len(problems) == 0}
}

// pointsSpent returns the budget cost of a pick: its full rank, except
// that granted nodes and sub-tree selectors cost nothing.
func pointsSpent(n *talent.Node, sel talent.Selection) int {
	if !n.CostsPoints() {
		return 0
	}
	return sel.Rank(n.ID)
}

func checkBudgets(sel talent.Selection, cat *talent.Catalog) []string {
	var problems []string
	for _, sec := range []talent.Section{talent.SectionPrimary, talent.SectionSpecialization, talent.SectionSubTree} {
		budget := cat.Budgets().For(sec)
		spent := 0
		nodes := cat.SectionNodes(sec)
		for i := range nodes {
			spent += pointsSpent(&nodes[i], sel)
		}
		if spent != budget {
			problems = append(problems,
				fmt.Sprintf("%s section spends %d points, budget is %d", sec, spent, budget))
		}
	}
	return problems
}

// checkGates verifies each gate threshold independently: satisfying the
// section total does not prove points were spent in gate order.
func checkGates(sel talent.Selection, cat *talent.Catalog) []string {
	var problems []string
	for _, sec := range []talent.Section{talent.SectionPrimary, talent.SectionSpecialization, talent.SectionSubTree} {
		nodes := cat.SectionNodes(sec)

		gateSet := make(map[int]bool)
		for i := range nodes {
			if nodes[i].ReqPoints > 0 {
				gateSet[nodes[i].ReqPoints] = true
			}
		}
		gates := make([]int, 0, len(gateSet))
		for g := range gateSet {
			gates = append(gates, g)
		}
		sort.Ints(gates)

		for _, g := range gates {
			before := 0
			for i := range nodes {
				if nodes[i].ReqPoints < g {
					before += pointsSpent(&nodes[i], sel)
				}
			}
			if before < g {
				problems = append(problems,
					fmt.Sprintf("%s section gate at %d points: only %d spent on earlier nodes", sec, g, before))
			}
		}
	}
	return problems
}

// checkSelectors verifies that every selected sub-tree selector picks an
// entry naming a group that actually has selected nodes. This catches
// encode/decode drift as well as caller mistakes.
func checkSelectors(sel talent.Selection, cat *talent.Catalog) []string {
	var problems []string
	nodes := cat.Nodes()
	for i := range nodes {
		n := &nodes[i]
		if n.Kind != talent.KindSubtree {
			continue
		}
		pick, ok := sel[n.ID]
		if !ok {
			continue
		}
		if pick.EntryIndex < 0 || pick.EntryIndex >= len(n.Entries) {
			problems = append(problems,
				fmt.Sprintf("selector node %s: entry index %d out of range", nodeLabel(n), pick.EntryIndex))
			continue
		}
		group := n.Entries[pick.EntryIndex]
		active := false
		for _, gn := range cat.SubTreeNodes(group) {
			if sel.Rank(gn.ID) > 0 {
				active = true
				break
			}
		}
		if !active {
			problems = append(problems,
				fmt.Sprintf("selector node %s picks %q but no nodes in that sub-tree are selected", nodeLabel(n), group))
		}
	}
	return problems
}
