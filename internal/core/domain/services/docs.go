// Package services contains stateless and session-scoped domain services
// that coordinate across the parcel model:
//
//   - TariffCalculator: the pure pricing engine, deriving a cost breakdown
//     from parcel type, weight, and the sender/receiver regions
//   - StagingSession: the order staging workflow, holding the transient
//     quoted state between form submission and the customer's decision
//
// Both services are free of I/O. The calculator is safe for concurrent use;
// a staging session belongs to a single submission flow and is not shared.
package services
