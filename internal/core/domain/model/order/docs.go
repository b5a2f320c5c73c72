// Package order provides the Order aggregate root: the immutable snapshot of
// a confirmed parcel submission together with its pricing, payment state, and
// append-only tracking history.
//
// The package includes:
//   - Order: the aggregate root materialized once from a quoted draft
//   - Status: the initial lifecycle classification (draft or pending payment)
//   - PaymentStatus: the payment side of the order, pending at creation
//   - TrackingEvent: one entry of the append-only tracking history
//
// Key business rules:
//   - An order is created exactly once from a held quote; the draft it came
//     from is snapshotted, never referenced
//   - The tracking history only grows; entries are never removed or reordered
//   - Every mutation bumps the version counter and the lastUpdated timestamp,
//     giving an external store an optimistic-concurrency hint
//   - Later lifecycle transitions (paid, in transit, delivered) belong to
//     downstream collaborators and are not modeled here
package order
