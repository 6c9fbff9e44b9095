// Package store persists the labeled corpus in SQLite.
//
// Imports canonicalize labels to the primary (English) vocabulary so queries
// behave identically no matter which language edition a CSV came from. One
// row exists per (language, book, chapter, verse); re-importing a verse
// replaces its labels. A file lock serializes writers across processes.
package store
