// Package transfer projects emotion and theme labels from the labeled
// primary-language corpus onto the secondary-language edition by positional
// (chapter, verse) alignment within each book. No inference runs on the
// secondary text; label vocabulary is translated through the fixed
// dictionaries in the labels package.
package transfer
