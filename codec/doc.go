// Package codec encodes and decodes talent loadout strings and validates
// selection mappings against point budgets and gate rules.
//
// The loadout string is a bit stream packed into a fixed 64-symbol
// alphabet, six bits per symbol, least-significant bit first within each
// group. The layout is byte-for-byte compatible with the game client's
// own serializer:
//
//	version(8) | treeID(16) | treeHash(128, reserved) | per-node records
//
// Each node of the catalog, in ascending ID order, contributes a
// variable-width record:
//
//	selected(1)
//	  purchased(1)
//	    maxed(1) [rank(6) when partially ranked]
//	    choice(1) [entryIndex(2) for choice and selector nodes]
//
// Strings may stop early once every remaining node is unselected;
// decoding treats missing trailing bits as zeros.
//
// # Encoding and decoding
//
//	s, err := codec.Encode(treeID, cat, sel)
//	lo, err := codec.Decode(s, cat)
//
// Round-trips are lossless: decoding the output of Encode reproduces the
// selection mapping exactly. Decode fails hard, before reading any node
// record, for a character outside the alphabet, a string shorter than
// the header, or a version other than SerializationVersion.
//
// # Validation
//
//	report := codec.Validate(sel, cat)
//	if !report.Valid {
//	    for _, p := range report.Problems { ... }
//	}
//
// Validate never returns an error and never stops at the first problem:
// section budget mismatches, gate shortfalls, and selector inconsistency
// are all reported together.
//
// All functions are pure and safe for concurrent use; the catalog is
// read-only and each call owns its selection mapping.
package codec
