// Package order provides the domain model for an in-progress order: the Item
// line entries and the Session aggregate that holds them for one conversation.
//
// The package enforces one invariant above all others: the session's running
// total always equals the sum of its items' totals. Every mutation maintains
// the total incrementally (old contribution subtracted, new contribution
// added) rather than resumming, so the exact arithmetic order is part of the
// contract — callers must not recompute totals themselves.
//
// A second deliberate rule lives in Reduce: when a line's quantity shrinks,
// its total is rescaled proportionally from the previous total instead of
// being recomputed from the base price. This silently preserves any size or
// customization surcharge baked into the prior total.
package order
