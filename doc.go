// Package ari models ARI values — the self-describing identifiers and
// literals used by the DTN Management Architecture (DTNMA).
//
// An Ari is either a Reference to a named management object, optionally
// parameterized, or a Literal whose value is a primitive, a time value, or a
// recursive container (list, map, table, execution set, or report set). The
// package provides structural Equal, a composable Hash derived from a single
// traversal, a generic Visit/Translate pair, and deep Clone. Text encoding
// and decoding live in the subpackage "ari/text".
//
// Values are passive data: two goroutines may read the same Ari
// concurrently, but mutation requires exclusive access, and none of the
// operations in this package perform I/O or retain goroutines of their own.
package ari
