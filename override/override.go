// Package override translates name-keyed build directives into node
// selections and drives the decode-modify-validate-encode pipeline used
// by calling tools.
package override

import (
	"strconv"
	"strings"

	"github.com/talentfoundry/loadout/codec"
	"github.com/talentfoundry/loadout/errors"
	"github.com/talentfoundry/loadout/talent"
)

// Directive is one name-keyed modification to a selection mapping.
type Directive struct {
	Name   string // node display name
	Entry  string // entry name for choice nodes; empty otherwise
	Rank   int    // desired rank; 0 means the node's max rank
	Remove bool
}

// ParseDirective parses the textual directive form
//
//	[+|-]Name[/Entry][:rank]
//
// A leading '-' removes the node; '+' (or no sigil) selects it. The
// optional '/Entry' suffix names the chosen entry of a choice node, and
// ':rank' requests a partial rank.
func ParseDirective(s string) (Directive, error) {
	raw := s
	var d Directive

	switch {
	case strings.HasPrefix(s, "-"):
		d.Remove = true
		s = s[1:]
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	}

	if name, rank, ok := strings.Cut(s, ":"); ok {
		n, err := strconv.Atoi(rank)
		if err != nil || n < 1 {
			return Directive{}, errors.InvalidDirective(raw, "rank suffix must be a positive integer")
		}
		d.Rank = n
		s = name
	}

	if name, entry, ok := strings.Cut(s, "/"); ok {
		if entry == "" {
			return Directive{}, errors.InvalidDirective(raw, "empty entry name")
		}
		d.Entry = entry
		s = name
	}

	if s == "" {
		return Directive{}, errors.InvalidDirective(raw, "empty node name")
	}
	d.Name = s

	if d.Remove && (d.Rank != 0 || d.Entry != "") {
		return Directive{}, errors.InvalidDirective(raw, "removal takes no rank or entry")
	}
	return d, nil
}

// ParseDirectives parses a comma-separated directive list.
func ParseDirectives(s string) ([]Directive, error) {
	var out []Directive
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		d, err := ParseDirective(part)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

// Apply resolves directives against the catalog and applies them to a
// copy of sel. The input selection is never mutated. A directive naming
// a node absent from the catalog fails with an unknown-node error
// rather than being silently skipped.
func Apply(sel talent.Selection, dirs []Directive, cat *talent.Catalog) (talent.Selection, error) {
	out := sel.Clone()
	for _, d := range dirs {
		n, ok := cat.ByName(d.Name)
		if !ok {
			return nil, errors.UnknownNode(errors.PhaseResolve, d.Name)
		}

		if d.Remove {
			delete(out, n.ID)
			continue
		}

		rank := d.Rank
		if rank == 0 {
			rank = n.MaxRank
		}
		if rank > n.MaxRank {
			return nil, errors.OutOfRange(errors.PhaseResolve, d.Name, "rank", rank, n.MaxRank)
		}

		entry := -1
		if n.Kind.HasEntries() {
			if d.Entry == "" {
				return nil, errors.ChoiceRequired(errors.PhaseResolve, d.Name)
			}
			for i, e := range n.Entries {
				if e == d.Entry {
					entry = i
					break
				}
			}
			if entry < 0 {
				return nil, errors.New(errors.PhaseResolve, errors.KindUnknownNode).
					Node(d.Name).
					Detail("no entry named %q", d.Entry).
					Build()
			}
		} else if d.Entry != "" {
			return nil, errors.New(errors.PhaseResolve, errors.KindInvalidDirective).
				Node(d.Name).
				Detail("entry %q given for a node without entries", d.Entry).
				Build()
		}

		out[n.ID] = talent.Pick{Rank: rank, EntryIndex: entry}
	}
	return out, nil
}

// Modify decodes a base loadout string, applies the directives,
// validates the result, and encodes a new string. If validation fails
// the full problem list is returned as an error and no string is
// produced.
func Modify(base string, dirs []Directive, cat *talent.Catalog) (string, error) {
	lo, err := codec.Decode(base, cat)
	if err != nil {
		return "", err
	}

	sel, err := Apply(lo.Selections, dirs, cat)
	if err != nil {
		return "", err
	}

	if report := codec.Validate(sel, cat); !report.Valid {
		return "", errors.Rejected(errors.PhaseResolve, report.Problems)
	}

	return codec.Encode(lo.TreeID, cat, sel)
}
