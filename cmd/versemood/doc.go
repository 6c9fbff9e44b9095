// Command versemood labels a bilingual verse corpus with emotions and themes,
// transfers labels across language editions, and serves randomized
// emotion/theme-matched recommendations.
package main
