// Package classifier defines the narrow text-classification capability the
// labeling pipeline consumes: rank labels by confidence for a batch of
// strings. The HTTP client speaks the hosted inference API for an emotion
// model (text classification) and a theme model (zero-shot classification
// against a fixed candidate label set). The rest of the system depends only on
// the interfaces, never on the transport.
package classifier
