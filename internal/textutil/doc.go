// Package textutil provides text normalization for label and book matching.
//
// Normalize folds case and diacritics so "Alegría" and "alegria" compare
// equal; NormalizeBookID additionally collapses separators so lexical book
// variants share one identifier. Both are idempotent, and both return the
// empty string on failure so a broken input can never match everything.
package textutil
