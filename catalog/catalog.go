// Package catalog loads talent.Catalog values from trait-tree JSON
// exports. The export file is produced by an external pipeline; this
// package only parses and orders it.
package catalog

import (
	"fmt"
	"os"

	"github.com/ohler55/ojg/oj"
	"go.uber.org/zap"

	"github.com/talentfoundry/loadout/errors"
	"github.com/talentfoundry/loadout/talent"
)

// Load reads and parses a trait-tree JSON export from disk.
func Load(path string) (*talent.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseCatalog, errors.KindInvalidData, err, "read trait tree file")
	}
	return Parse(data)
}

// Parse builds a catalog from a trait-tree JSON export:
//
//	{
//	  "treeId": 790,
//	  "budgets": {"primary": 34, "specialization": 34, "subtree": 13},
//	  "nodes": [
//	    {"id": 1, "name": "Fireblast", "maxRank": 2, "type": "normal",
//	     "granted": false, "reqPoints": 8, "section": "primary"},
//	    ...
//	  ]
//	}
//
// "budgets" is optional; absent sections keep their defaults. Nodes may
// appear in any order.
func Parse(data []byte) (*talent.Catalog, error) {
	doc, err := oj.Parse(data)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseCatalog, errors.KindInvalidData, err, "parse trait tree JSON")
	}
	root, ok := doc.(map[string]any)
	if !ok {
		return nil, errors.InvalidData(errors.PhaseCatalog, "trait tree root is not an object")
	}

	treeID, err := intField(root, "treeId", true)
	if err != nil {
		return nil, err
	}
	if treeID < 0 || treeID > 0xFFFF {
		return nil, errors.InvalidData(errors.PhaseCatalog,
			fmt.Sprintf("treeId %d does not fit the 16-bit identity field", treeID))
	}

	rawNodes, ok := root["nodes"].([]any)
	if !ok {
		return nil, errors.InvalidData(errors.PhaseCatalog, `"nodes" is missing or not an array`)
	}

	nodes := make([]talent.Node, 0, len(rawNodes))
	for i, rn := range rawNodes {
		obj, ok := rn.(map[string]any)
		if !ok {
			return nil, errors.InvalidData(errors.PhaseCatalog, fmt.Sprintf("node %d is not an object", i))
		}
		n, err := parseNode(obj, i)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}

	cat, err := talent.New(uint16(treeID), nodes)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseCatalog, errors.KindInvalidData, err, "build catalog")
	}

	if rawBudgets, ok := root["budgets"].(map[string]any); ok {
		b := cat.Budgets()
		if v, err := intField(rawBudgets, "primary", false); err != nil {
			return nil, err
		} else if v >= 0 {
			b.Primary = v
		}
		if v, err := intField(rawBudgets, "specialization", false); err != nil {
			return nil, err
		} else if v >= 0 {
			b.Specialization = v
		}
		if v, err := intField(rawBudgets, "subtree", false); err != nil {
			return nil, err
		} else if v >= 0 {
			b.SubTree = v
		}
		cat.SetBudgets(b)
	}

	Logger().Debug("loaded trait tree",
		zap.Uint16("treeID", cat.TreeID()),
		zap.Int("nodes", cat.Len()),
		zap.Strings("subTrees", cat.SubTreeNames()))
	return cat, nil
}

func parseNode(obj map[string]any, idx int) (talent.Node, error) {
	var n talent.Node

	id, err := intField(obj, "id", true)
	if err != nil {
		return n, errors.Wrap(errors.PhaseCatalog, errors.KindInvalidData, err, fmt.Sprintf("node %d", idx))
	}
	n.ID = uint32(id)
	n.Name, _ = obj["name"].(string)

	maxRank, err := intField(obj, "maxRank", false)
	if err != nil {
		return n, err
	}
	if maxRank < 0 {
		maxRank = 1
	}
	n.MaxRank = maxRank

	kindName, _ := obj["type"].(string)
	switch kindName {
	case "", "normal":
		n.Kind = talent.KindNormal
	case "choice":
		n.Kind = talent.KindChoice
	case "subtree":
		n.Kind = talent.KindSubtree
	default:
		return n, errors.InvalidData(errors.PhaseCatalog,
			fmt.Sprintf("node %d: unknown node type %q", n.ID, kindName))
	}

	if rawEntries, ok := obj["entries"].([]any); ok {
		for _, re := range rawEntries {
			name, ok := re.(string)
			if !ok {
				return n, errors.InvalidData(errors.PhaseCatalog,
					fmt.Sprintf("node %d: entry is not a string", n.ID))
			}
			n.Entries = append(n.Entries, name)
		}
	}

	n.Granted, _ = obj["granted"].(bool)

	req, err := intField(obj, "reqPoints", false)
	if err != nil {
		return n, err
	}
	if req > 0 {
		n.ReqPoints = req
	}

	sectionName, _ := obj["section"].(string)
	switch sectionName {
	case "", "primary":
		n.Section = talent.SectionPrimary
	case "specialization":
		n.Section = talent.SectionSpecialization
	case "subtree":
		n.Section = talent.SectionSubTree
	default:
		return n, errors.InvalidData(errors.PhaseCatalog,
			fmt.Sprintf("node %d: unknown section %q", n.ID, sectionName))
	}

	n.SubTree, _ = obj["subTree"].(string)
	return n, nil
}

// intField fetches an integer member. ojg yields int64 for JSON
// integers and float64 for decimals; both are accepted. Returns -1 for
// an absent optional field.
func intField(obj map[string]any, key string, required bool) (int, error) {
	v, ok := obj[key]
	if !ok {
		if required {
			return 0, errors.InvalidData(errors.PhaseCatalog, fmt.Sprintf("missing required field %q", key))
		}
		return -1, nil
	}
	switch t := v.(type) {
	case int64:
		return int(t), nil
	case float64:
		return int(t), nil
	default:
		return 0, errors.InvalidData(errors.PhaseCatalog, fmt.Sprintf("field %q is not a number", key))
	}
}
