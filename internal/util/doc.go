// Package util provides small, dependency-free helpers shared across Guerite:
// slice and map set-difference operations, random token generation for
// rollback-artifact suffixes, duration formatting for logs, and disk-space
// string parsing for the prune budget.
//
// Key components:
//   - SliceEqual, SliceSubtract: Set operations on string slices.
//   - StringMapSubtract, StructMapSubtract: Set operations on maps.
//   - RandName, RandSuffix: Random naming for swap/rollback container names.
//   - GenerateRandomSHA256: Random 64-character SHA-256 hashes, used in tests.
//   - FormatDuration, ParseDiskSpace: Human-readable duration and disk-size parsing.
package util
