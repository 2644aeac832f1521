package main

import (
	"flag"
	"fmt"
	"os"
	"sort"

	"go.uber.org/zap"

	"github.com/talentfoundry/loadout/catalog"
	"github.com/talentfoundry/loadout/codec"
	"github.com/talentfoundry/loadout/override"
	"github.com/talentfoundry/loadout/talent"
)

func main() {
	var (
		catalogFile = flag.String("catalog", "", "Path to trait tree JSON export")
		decodeStr   = flag.String("decode", "", "Loadout string to decode and print")
		validateStr = flag.String("validate", "", "Loadout string to decode and validate")
		modifyStr   = flag.String("modify", "", "Base loadout string to modify")
		directives  = flag.String("set", "", "Directives for -modify (comma-separated, e.g. 'Fireblast:2,-Ice Barrier')")
		interactive = flag.String("i", "", "Loadout string to inspect interactively")
		verbose     = flag.Bool("v", false, "Verbose logging")
	)
	flag.Parse()

	if *catalogFile == "" {
		fmt.Fprintln(os.Stderr, "Usage: loadout -catalog <tree.json> -decode <string>")
		fmt.Fprintln(os.Stderr, "       loadout -catalog <tree.json> -validate <string>")
		fmt.Fprintln(os.Stderr, "       loadout -catalog <tree.json> -modify <string> -set <directives>")
		fmt.Fprintln(os.Stderr, "       loadout -catalog <tree.json> -i <string>  (interactive mode)")
		os.Exit(1)
	}

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err == nil {
			catalog.SetLogger(logger)
			defer logger.Sync()
		}
	}

	cat, err := catalog.Load(*catalogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *interactive != "" {
		if err := runInteractive(cat, *interactive); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(cat, *decodeStr, *validateStr, *modifyStr, *directives); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cat *talent.Catalog, decodeStr, validateStr, modifyStr, directives string) error {
	switch {
	case decodeStr != "":
		return printDecoded(cat, decodeStr)
	case validateStr != "":
		return printValidation(cat, validateStr)
	case modifyStr != "":
		dirs, err := override.ParseDirectives(directives)
		if err != nil {
			return err
		}
		out, err := override.Modify(modifyStr, dirs, cat)
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	default:
		return fmt.Errorf("nothing to do: pass -decode, -validate, -modify, or -i")
	}
}

func printDecoded(cat *talent.Catalog, s string) error {
	lo, err := codec.Decode(s, cat)
	if err != nil {
		return err
	}

	fmt.Printf("Tree: %d\n", lo.TreeID)
	fmt.Printf("Selected nodes: %d\n\n", len(lo.Selections))

	ids := make([]uint32, 0, len(lo.Selections))
	for id := range lo.Selections {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		pick := lo.Selections[id]
		n, _ := cat.Node(id)
		name := n.Name
		if name == "" {
			name = fmt.Sprintf("#%d", id)
		}
		line := fmt.Sprintf("  %s %d/%d", name, pick.Rank, n.MaxRank)
		if pick.EntryIndex >= 0 && pick.EntryIndex < len(n.Entries) {
			line += " (" + n.Entries[pick.EntryIndex] + ")"
		}
		fmt.Println(line)
	}
	return nil
}

func printValidation(cat *talent.Catalog, s string) error {
	lo, err := codec.Decode(s, cat)
	if err != nil {
		return err
	}

	report := codec.Validate(lo.Selections, cat)
	if report.Valid {
		fmt.Println("valid")
		return nil
	}
	fmt.Printf("%d problem(s):\n", len(report.Problems))
	for _, p := range report.Problems {
		fmt.Printf("  - %s\n", p)
	}
	return fmt.Errorf("build is invalid")
}
