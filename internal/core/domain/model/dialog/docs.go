// Package dialog models the conversational envelope shared with the external
// natural-language interpreter: continuation contexts, context directives, and
// the loosely typed parameter bags attached to intents.
//
// The interpreter delivers slot values with unstable shapes (a bare scalar one
// turn, a list the next), so this package centralizes the tolerant coercion
// rules instead of scattering type switches through the use cases. Quantity
// coercion in particular produces an explicit typed result (Quantity) because
// the operations branch differently on a malformed value.
package dialog
