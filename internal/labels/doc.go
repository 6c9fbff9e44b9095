// Package labels defines the closed emotion and theme vocabularies, the fixed
// English/Spanish translation dictionaries for those vocabularies, and the
// per-book identifier correspondence between the two corpus editions.
//
// English is the primary vocabulary: every labeled corpus is canonicalized to
// English labels internally, and translation to Spanish happens only at the
// file boundary. All lookups are total; an unmapped label passes through
// unchanged rather than failing.
package labels
