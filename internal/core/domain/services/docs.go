// Package services provides the ordering-policy domain services that sit
// between the intent use cases and the catalog: customization legality and
// quantity limits.
//
// Both services return explicit decision values rather than errors. A policy
// refusal is a normal conversational outcome with a user-facing message, not
// a failure; errors are reserved for infrastructure problems, and the
// quantity-limit service deliberately swallows even those (fail open) so an
// unreachable policy store never blocks an order.
package services
