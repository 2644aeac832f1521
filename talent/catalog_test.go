package talent_test

import (
	"strings"
	"testing"

	"github.com/talentfoundry/loadout/talent"
)

func TestNewSortsByID(t *testing.T) {
	cat, err := talent.New(1, []talent.Node{
		{ID: 30, MaxRank: 1},
		{ID: 10, MaxRank: 1},
		{ID: 20, MaxRank: 1},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	nodes := cat.Nodes()
	for i := 1; i < len(nodes); i++ {
		if nodes[i-1].ID >= nodes[i].ID {
			t.Fatalf("nodes not in ascending ID order: %d before %d", nodes[i-1].ID, nodes[i].ID)
		}
	}
}

func TestNewRejectsDuplicateID(t *testing.T) {
	_, err := talent.New(1, []talent.Node{
		{ID: 5, MaxRank: 1},
		{ID: 5, MaxRank: 1},
	})
	if err == nil {
		t.Fatal("expected error for duplicate ID")
	}
	if !strings.Contains(err.Error(), "duplicate node ID 5") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestNewRejectsZeroMaxRank(t *testing.T) {
	_, err := talent.New(1, []talent.Node{
		{ID: 5, MaxRank: 0},
	})
	if err == nil {
		t.Fatal("expected error for zero max rank")
	}
}

func TestNewRejectsChoiceWithoutEntries(t *testing.T) {
	_, err := talent.New(1, []talent.Node{
		{ID: 5, MaxRank: 1, Kind: talent.KindChoice},
	})
	if err == nil {
		t.Fatal("expected error for choice node without entries")
	}
}

func TestNewRejectsEntriesOnNormalNode(t *testing.T) {
	_, err := talent.New(1, []talent.Node{
		{ID: 5, MaxRank: 1, Kind: talent.KindNormal, Entries: []string{"x"}},
	})
	if err == nil {
		t.Fatal("expected error for entries on a normal node")
	}
}

func TestLookups(t *testing.T) {
	cat, err := talent.New(9, []talent.Node{
		{ID: 1, Name: "Fireblast", MaxRank: 2},
		{ID: 2, Name: "Ice Barrier", MaxRank: 1},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if n, ok := cat.Node(2); !ok || n.Name != "Ice Barrier" {
		t.Errorf("Node(2): got %v, %v", n, ok)
	}
	if _, ok := cat.Node(99); ok {
		t.Error("Node(99) should not exist")
	}
	if n, ok := cat.ByName("Fireblast"); !ok || n.ID != 1 {
		t.Errorf("ByName(Fireblast): got %v, %v", n, ok)
	}
	if _, ok := cat.ByName("Pyroblast"); ok {
		t.Error("ByName(Pyroblast) should not exist")
	}
	if cat.TreeID() != 9 {
		t.Errorf("TreeID: got %d, want 9", cat.TreeID())
	}
}

func TestSectionPartitioning(t *testing.T) {
	cat, err := talent.New(1, []talent.Node{
		{ID: 1, MaxRank: 1, Section: talent.SectionPrimary},
		{ID: 2, MaxRank: 1, Section: talent.SectionSpecialization},
		{ID: 3, MaxRank: 1, Section: talent.SectionSubTree, SubTree: "flame"},
		{ID: 4, MaxRank: 1, Section: talent.SectionSubTree, SubTree: "frost"},
		{ID: 5, MaxRank: 1, Section: talent.SectionSubTree, SubTree: "flame"},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if got := len(cat.SectionNodes(talent.SectionSubTree)); got != 3 {
		t.Errorf("SectionNodes(subtree): got %d nodes, want 3", got)
	}

	names := cat.SubTreeNames()
	if len(names) != 2 || names[0] != "flame" || names[1] != "frost" {
		t.Errorf("SubTreeNames: got %v", names)
	}

	flame := cat.SubTreeNodes("flame")
	if len(flame) != 2 || flame[0].ID != 3 || flame[1].ID != 5 {
		t.Errorf("SubTreeNodes(flame): got %v", flame)
	}
}

func TestSelectorDiscovery(t *testing.T) {
	cat, err := talent.New(1, []talent.Node{
		// A plain choice node whose entries are not sub-tree groups.
		{ID: 1, MaxRank: 1, Kind: talent.KindChoice, Entries: []string{"a", "b"}},
		// A selector-kind node naming an unknown group: not the selector.
		{ID: 2, MaxRank: 1, Kind: talent.KindSubtree, Entries: []string{"flame", "void"}},
		// The real selector: every entry names an existing group.
		{ID: 3, MaxRank: 1, Kind: talent.KindSubtree, Entries: []string{"flame", "frost"}},
		{ID: 4, MaxRank: 1, Section: talent.SectionSubTree, SubTree: "flame"},
		{ID: 5, MaxRank: 1, Section: talent.SectionSubTree, SubTree: "frost"},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	sel, ok := cat.Selector()
	if !ok {
		t.Fatal("expected a selector node")
	}
	if sel.ID != 3 {
		t.Errorf("Selector: got node %d, want 3", sel.ID)
	}
}

func TestSelectorDiscoveryAbsent(t *testing.T) {
	cat, err := talent.New(1, []talent.Node{
		{ID: 1, MaxRank: 1},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, ok := cat.Selector(); ok {
		t.Error("catalog without selector-kind nodes must report none")
	}
}

func TestBaselineAndCosts(t *testing.T) {
	granted := talent.Node{ID: 1, MaxRank: 1, Granted: true}
	plain := talent.Node{ID: 2, MaxRank: 1}
	selector := talent.Node{ID: 3, MaxRank: 1, Kind: talent.KindSubtree, Entries: []string{"x"}}

	if granted.Baseline() != 1 || plain.Baseline() != 0 {
		t.Error("baseline must be 1 for granted nodes and 0 otherwise")
	}
	if granted.CostsPoints() || selector.CostsPoints() {
		t.Error("granted and selector nodes must not cost points")
	}
	if !plain.CostsPoints() {
		t.Error("plain nodes must cost points")
	}
}

func TestSelectionCloneIndependent(t *testing.T) {
	sel := talent.Selection{1: {Rank: 2, EntryIndex: -1}}
	clone := sel.Clone()
	clone[1] = talent.Pick{Rank: 1, EntryIndex: -1}
	clone[2] = talent.Pick{Rank: 1, EntryIndex: -1}

	if sel.Rank(1) != 2 {
		t.Error("mutating the clone changed the original")
	}
	if sel.Rank(2) != 0 {
		t.Error("clone insertion leaked into the original")
	}
}

func TestBudgetsDefaultAndOverride(t *testing.T) {
	cat, err := talent.New(1, []talent.Node{{ID: 1, MaxRank: 1}})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	b := cat.Budgets()
	if b != talent.DefaultBudgets {
		t.Errorf("expected default budgets, got %+v", b)
	}
	if b.For(talent.SectionPrimary) != 34 || b.For(talent.SectionSubTree) != 13 {
		t.Errorf("budget lookup mismatch: %+v", b)
	}

	cat.SetBudgets(talent.Budgets{Primary: 1, Specialization: 2, SubTree: 3})
	if got := cat.Budgets().For(talent.SectionSpecialization); got != 2 {
		t.Errorf("override not applied: got %d", got)
	}
}
