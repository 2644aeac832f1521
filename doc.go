// Package loadout serializes, deserializes, and validates talent build
// configurations ("loadouts") in the bit-packed string format used by
// the game client and third-party planners.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct
// responsibilities:
//
//	loadout/             Root package documentation
//	├── talent/          Node catalog data model and query helpers
//	├── codec/           Loadout string encoding, decoding, validation
//	├── catalog/         Trait-tree JSON export loading
//	├── override/        Name-keyed build directives and modification
//	├── errors/          Structured error types
//	└── cmd/loadout/     CLI and interactive inspector
//
// # Quick Start
//
// Load a catalog and decode a loadout string:
//
//	cat, err := catalog.Load("tree.json")
//	if err != nil { ... }
//
//	lo, err := codec.Decode(s, cat)
//	if err != nil { ... }
//
//	report := codec.Validate(lo.Selections, cat)
//	if !report.Valid {
//	    for _, p := range report.Problems { ... }
//	}
//
// Modify an existing string by display name:
//
//	dirs, _ := override.ParseDirectives("Fireblast:2,-Ice Barrier")
//	out, err := override.Modify(s, dirs, cat)
//
// The wire format is positional and externally specified; see the codec
// package documentation for the exact bit layout.
package loadout
