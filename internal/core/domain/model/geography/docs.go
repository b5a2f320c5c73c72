// Package geography provides the static service-coverage catalog: regions,
// their service centers, and membership lookups between the two.
//
// The catalog is reference data supplied by configuration. It is loaded once
// at process start into a Directory, which precomputes a service-center to
// region index so that membership lookups are O(1). A Directory never changes
// after construction and is therefore safe to share across goroutines without
// locking.
//
// The pricing engine uses the Directory for exactly one decision: whether two
// service centers belong to the same region ("within city" delivery).
// Comparison is by region identity, not geographic distance.
package geography
