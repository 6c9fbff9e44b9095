// Package labeling turns classifier rankings into stored verse labels and
// runs the per-file labeling pipeline over a cleaned corpus: forced-choice
// top-1 emotion selection, threshold-gated multi-label theme assignment, and
// per-item error isolation so one failed batch never discards its siblings.
package labeling
