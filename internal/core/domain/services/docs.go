// Package services provides domain services that orchestrate business
// operations across multiple aggregates.
//
// The package includes:
//   - ReduceOrderStatus: the pure reduction of parcel statuses into an
//     order's composite status
//   - CodeGenerator: tracking-code and unit-number issuance from per-owner
//     daily sequence counters
//
// Domain services hold logic that does not naturally belong to a single
// aggregate root.
package services
