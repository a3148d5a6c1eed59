// Package disks models a row of two-colored disks for the alternating disks
// problem.
//
// A row holds 2*n disks, each [Light] or [Dark]. Rows built with [New] start
// in alternating form: index 0 is dark, index 1 light, and so on. The goal of
// the sorting algorithms in pkg/sorting is to reach sorted form, where every
// light disk sits in the left half and every dark disk in the right half:
//
//	alternating:  D L D L D L
//	sorted:       L L L D D D
//
// # Core Types
//
//   - [Color]: The color of one disk
//   - [State]: An ordered row of disks with read, swap, and predicate methods
//
// # Preconditions
//
// Construction reports bad input as an error (see pkg/errors codes
// INVALID_LIGHT_COUNT and INVALID_ROW). Indexing is a programmer error:
// [State.Get] and [State.Swap] panic on an out-of-range index, the same way
// slice indexing does.
//
// # Serialization
//
// A row renders as space-separated letters ("D L D L"). [Parse] reverses
// [State.String], and State implements encoding.TextMarshaler so rows embed
// as plain strings in JSON, YAML, and cache entries.
package disks
