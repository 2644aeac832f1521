package codec_test

import (
	"strings"
	"testing"

	"github.com/talentfoundry/loadout/codec"
	"github.com/talentfoundry/loadout/talent"
)

// gatedCatalog has a 34-point primary section with gates at 8 and 20,
// and nothing in the other sections (their budgets are zeroed).
func gatedCatalog(t *testing.T) *talent.Catalog {
	t.Helper()
	cat := mustCatalog(t, 100, []talent.Node{
		{ID: 1, Name: "EarlyA", MaxRank: 5, Kind: talent.KindNormal},
		{ID: 2, Name: "EarlyB", MaxRank: 5, Kind: talent.KindNormal},
		{ID: 3, Name: "MidA", MaxRank: 10, Kind: talent.KindNormal, ReqPoints: 8},
		{ID: 4, Name: "MidB", MaxRank: 10, Kind: talent.KindNormal, ReqPoints: 8},
		{ID: 5, Name: "Late", MaxRank: 20, Kind: talent.KindNormal, ReqPoints: 20},
	})
	cat.SetBudgets(talent.Budgets{Primary: 34, Specialization: 0, SubTree: 0})
	return cat
}

func TestValidateLegalBuild(t *testing.T) {
	cat := gatedCatalog(t)
	// 10 points before gate 8, 20 before gate 20, 34 total.
	sel := talent.Selection{
		1: {Rank: 5, EntryIndex: -1},
		2: {Rank: 5, EntryIndex: -1},
		3: {Rank: 10, EntryIndex: -1},
		5: {Rank: 14, EntryIndex: -1},
	}

	report := codec.Validate(sel, cat)
	if !report.Valid {
		t.Errorf("expected valid build, got problems: %v", report.Problems)
	}
}

func TestValidateBudgetMismatch(t *testing.T) {
	cat := gatedCatalog(t)
	sel := talent.Selection{
		1: {Rank: 5, EntryIndex: -1},
		2: {Rank: 5, EntryIndex: -1},
	}

	report := codec.Validate(sel, cat)
	if report.Valid {
		t.Fatal("expected budget violation")
	}
	found := false
	for _, p := range report.Problems {
		if strings.Contains(p, "primary section spends 10") && strings.Contains(p, "budget is 34") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected primary budget problem, got %v", report.Problems)
	}
}

func TestValidateGateShortfall(t *testing.T) {
	cat := gatedCatalog(t)
	// 34 points total, exactly on budget, but only 7 spent before the
	// 8-point gate: the build must fail naming gate 8.
	sel := talent.Selection{
		1: {Rank: 4, EntryIndex: -1},
		2: {Rank: 3, EntryIndex: -1},
		3: {Rank: 10, EntryIndex: -1},
		4: {Rank: 10, EntryIndex: -1},
		5: {Rank: 7, EntryIndex: -1},
	}

	report := codec.Validate(sel, cat)
	if report.Valid {
		t.Fatal("expected gate violation despite exact budget")
	}
	found := false
	for _, p := range report.Problems {
		if strings.Contains(p, "gate at 8") && strings.Contains(p, "only 7") {
			found = true
		}
		if strings.Contains(p, "budget") {
			t.Errorf("budget problem reported for an on-budget build: %s", p)
		}
	}
	if !found {
		t.Errorf("expected gate-8 shortfall, got %v", report.Problems)
	}
}

func TestValidateEachGateIndependently(t *testing.T) {
	cat := gatedCatalog(t)
	// Gate 8 is satisfied (10 points early) but gate 20 is not: only
	// 14 points sit below it.
	sel := talent.Selection{
		1: {Rank: 5, EntryIndex: -1},
		2: {Rank: 5, EntryIndex: -1},
		3: {Rank: 4, EntryIndex: -1},
		5: {Rank: 20, EntryIndex: -1},
	}

	report := codec.Validate(sel, cat)
	if report.Valid {
		t.Fatal("expected gate-20 violation")
	}
	for _, p := range report.Problems {
		if strings.Contains(p, "gate at 8") {
			t.Errorf("gate 8 is satisfied but was reported: %s", p)
		}
	}
	found := false
	for _, p := range report.Problems {
		if strings.Contains(p, "gate at 20") && strings.Contains(p, "only 14") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected gate-20 shortfall, got %v", report.Problems)
	}
}

func TestValidateGrantedAndSelectorCostNothing(t *testing.T) {
	cat := mustCatalog(t, 100, []talent.Node{
		{ID: 1, Name: "Free", MaxRank: 1, Kind: talent.KindNormal, Granted: true},
		{ID: 2, Name: "Paid", MaxRank: 2, Kind: talent.KindNormal},
		{ID: 3, Name: "Pick", MaxRank: 1, Kind: talent.KindSubtree, Entries: []string{"flame"}},
		{ID: 4, Name: "Ember", MaxRank: 1, Kind: talent.KindNormal, Section: talent.SectionSubTree, SubTree: "flame"},
	})
	cat.SetBudgets(talent.Budgets{Primary: 2, Specialization: 0, SubTree: 1})

	sel := talent.Selection{
		1: {Rank: 1, EntryIndex: -1},
		2: {Rank: 2, EntryIndex: -1},
		3: {Rank: 1, EntryIndex: 0},
		4: {Rank: 1, EntryIndex: -1},
	}

	report := codec.Validate(sel, cat)
	if !report.Valid {
		t.Errorf("granted and selector ranks must not count against budgets: %v", report.Problems)
	}
}

func TestValidateSelectorWithoutActiveSubTree(t *testing.T) {
	cat := mustCatalog(t, 100, []talent.Node{
		{ID: 1, Name: "Pick", MaxRank: 1, Kind: talent.KindSubtree, Entries: []string{"flame", "frost"}},
		{ID: 2, Name: "Ember", MaxRank: 1, Kind: talent.KindNormal, Section: talent.SectionSubTree, SubTree: "flame"},
		{ID: 3, Name: "Icicle", MaxRank: 1, Kind: talent.KindNormal, Section: talent.SectionSubTree, SubTree: "frost"},
	})
	cat.SetBudgets(talent.Budgets{Primary: 0, Specialization: 0, SubTree: 1})

	// Selector picks flame but only a frost node is selected.
	sel := talent.Selection{
		1: {Rank: 1, EntryIndex: 0},
		3: {Rank: 1, EntryIndex: -1},
	}

	report := codec.Validate(sel, cat)
	if report.Valid {
		t.Fatal("expected selector/sub-tree inconsistency")
	}
	found := false
	for _, p := range report.Problems {
		if strings.Contains(p, "Pick") && strings.Contains(p, `"flame"`) {
			found = true
		}
	}
	if !found {
		t.Errorf("expected selector problem naming the group, got %v", report.Problems)
	}
}

func TestValidateSelectorEntryOutOfRange(t *testing.T) {
	cat := mustCatalog(t, 100, []talent.Node{
		{ID: 1, Name: "Pick", MaxRank: 1, Kind: talent.KindSubtree, Entries: []string{"flame"}},
		{ID: 2, Name: "Ember", MaxRank: 1, Kind: talent.KindNormal, Section: talent.SectionSubTree, SubTree: "flame"},
	})
	cat.SetBudgets(talent.Budgets{Primary: 0, Specialization: 0, SubTree: 1})

	sel := talent.Selection{
		1: {Rank: 1, EntryIndex: -1},
		2: {Rank: 1, EntryIndex: -1},
	}

	report := codec.Validate(sel, cat)
	if report.Valid {
		t.Fatal("expected entry index problem")
	}
	found := false
	for _, p := range report.Problems {
		if strings.Contains(p, "entry index -1 out of range") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected out-of-range entry problem, got %v", report.Problems)
	}
}

func TestValidateCollectsAllProblems(t *testing.T) {
	cat := gatedCatalog(t)
	// Over budget and short on both gates: every problem family at once.
	sel := talent.Selection{
		5: {Rank: 20, EntryIndex: -1},
		3: {Rank: 4, EntryIndex: -1},
		4: {Rank: 4, EntryIndex: -1},
	}

	report := codec.Validate(sel, cat)
	if report.Valid {
		t.Fatal("expected violations")
	}
	if len(report.Problems) < 3 {
		t.Errorf("expected budget and both gate problems together, got %v", report.Problems)
	}
}
