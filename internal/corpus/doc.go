// Package corpus holds the verse record model shared by the labeling,
// transfer, and recommendation stages, the canonical three-way sectioning of
// the canon, and the CSV codec used at the file boundary.
package corpus
