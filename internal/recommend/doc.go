// Package recommend serves emotion/theme-matched verse recommendations from a
// labeled corpus: filter on normalized labels, partition into the three canon
// sections, draw a stratified random sample, and shuffle so presentation order
// leaks nothing about sectioning.
package recommend
